package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Predicate is a filter function over a single die.
type Predicate func(*Die) bool

// Filter narrows a set of dice by whitespace-separated criteria. Each token
// further narrows the result of the previous tokens:
//
//   - a color or size word (or its code key, like RED or M) keeps matching dice
//   - dX keeps dice with X sides, fX keeps dice with X unique faces
//   - a flag name keeps dice with that flag set, !flag keeps dice without it
//   - otherwise the token is looked up in predicates
//
// Unrecognized tokens are reported as warnings and skipped; they never abort
// the remaining tokens. The input slice is never mutated.
func Filter(dice []*Die, criteria string, predicates map[string]Predicate) ([]*Die, []string) {
	output := make([]*Die, len(dice))
	copy(output, dice)
	var warnings []string
	for _, word := range strings.Fields(strings.ToLower(criteria)) {
		// Resolve code keys to their display words first, so RED and M
		// work as well as red and medium.
		if name, ok := Colors[strings.ToUpper(word)]; ok {
			word = name
		} else if name, ok := Sizes[strings.ToUpper(word)]; ok {
			word = name
		}
		switch {
		case isColorName(word):
			output = keep(output, func(d *Die) bool { return d.Color == word })
		case isSizeName(word):
			output = keep(output, func(d *Die) bool { return d.Size == word })
		case strings.HasPrefix(word, "d") && isNumeric(word[1:]):
			n, _ := strconv.Atoi(word[1:])
			output = keep(output, func(d *Die) bool { return d.Sides == n })
		case strings.HasPrefix(word, "f") && isNumeric(word[1:]):
			n, _ := strconv.Atoi(word[1:])
			output = keep(output, func(d *Die) bool { return d.Faces == n })
		default:
			flagWord := strings.ReplaceAll(word, "-", "_")
			if isFlagName(flagWord) {
				output = keep(output, func(d *Die) bool {
					on, _ := d.Flag(flagWord)
					return on
				})
			} else if strings.HasPrefix(flagWord, "!") && isFlagName(flagWord[1:]) {
				output = keep(output, func(d *Die) bool {
					on, _ := d.Flag(flagWord[1:])
					return !on
				})
			} else if pred, ok := predicates[flagWord]; ok {
				output = keep(output, pred)
			} else {
				warnings = append(warnings, fmt.Sprintf("unrecognized filter criteria: %s", word))
			}
		}
	}
	return output, warnings
}

func keep(dice []*Die, pred Predicate) []*Die {
	kept := dice[:0:0]
	for _, d := range dice {
		if pred(d) {
			kept = append(kept, d)
		}
	}
	return kept
}

func isColorName(word string) bool {
	_, ok := colorKeys[word]
	return ok
}

func isSizeName(word string) bool {
	_, ok := sizeKeys[word]
	return ok
}

func isFlagName(word string) bool {
	for _, name := range FlagNames {
		if word == name {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
