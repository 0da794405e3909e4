package dice

// BuiltinPredicates returns the named filter predicates available out of the
// box. Callers may add their own entries before passing the map to Filter;
// names are matched as supplied, after hyphens are normalized to underscores.
func BuiltinPredicates() map[string]Predicate {
	return map[string]Predicate{
		"odd_sided": IsOddSided,
		"platonic":  IsPlatonic,
		"standard":  IsStandard,
	}
}

// IsOddSided reports whether the die has an odd number of sides.
func IsOddSided(d *Die) bool {
	return d.Sides%2 == 1
}

// IsPlatonic reports whether the die is a platonic solid.
func IsPlatonic(d *Die) bool {
	switch d.Sides {
	case 4, 6, 8, 12, 20:
		return !d.OddShape
	}
	return false
}

// IsStandard reports whether the die is a standard gaming die: medium size,
// one of the usual side counts, normally shaped, and (except for d10s, which
// are often numbered 0-9) normally faced.
func IsStandard(d *Die) bool {
	switch d.Sides {
	case 4, 6, 8, 10, 12, 20:
	default:
		return false
	}
	if d.Size != "medium" || d.OddShape {
		return false
	}
	return d.Sides == 10 || !d.OddFace
}
