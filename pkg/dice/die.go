package dice

import (
	"fmt"
	"strings"
)

// Die is a unique die type within the collection: the decoded features of its
// code plus how many of that type are owned. The code is the identity key,
// two dice with equal codes are the same die type.
type Die struct {
	Code  string
	Count int

	Color string
	Size  string
	Sides int
	Faces int

	ArtPip   bool // unusual max and/or min pip
	Material bool // made of something besides plastic or resin
	OddShape bool // non-platonicish shape
	OddPip   bool // pips that are not dots or numerals
	OddFace  bool // faces that are not 1 to the number of sides
}

// New decodes a die code into a Die holding count dice of that type.
func New(code string, count int) (*Die, error) {
	d, err := decode(code)
	if err != nil {
		return nil, err
	}
	return &Die{
		Code:     code,
		Count:    count,
		Color:    d.color,
		Size:     d.size,
		Sides:    d.sides,
		Faces:    d.faces,
		ArtPip:   d.flags&1 != 0,
		Material: d.flags&2 != 0,
		OddShape: d.flags&4 != 0,
		OddPip:   d.flags&8 != 0,
		OddFace:  d.flags&16 != 0,
	}, nil
}

// Add increases the count of this die type, merging new stock into the record.
func (d *Die) Add(n int) {
	d.Count += n
}

// FlagMask packs the five flag attributes back into their bit mask.
func (d *Die) FlagMask() int {
	mask := 0
	for i, name := range FlagNames {
		if on, _ := d.Flag(name); on {
			mask |= 1 << i
		}
	}
	return mask
}

// Flag reports the flag attribute stored under name (underscore form).
func (d *Die) Flag(name string) (bool, bool) {
	switch name {
	case "art_pip":
		return d.ArtPip, true
	case "material":
		return d.Material, true
	case "odd_shape":
		return d.OddShape, true
	case "odd_pip":
		return d.OddPip, true
	case "odd_face":
		return d.OddFace, true
	}
	return false, false
}

// String renders the human readable form, like "medium red d10/20 (odd face)".
func (d *Die) String() string {
	text := fmt.Sprintf("%s %s d%d", d.Size, d.Color, d.Sides)
	if d.Faces != d.Sides {
		text = fmt.Sprintf("%s/%d", text, d.Faces)
	}
	var set []string
	for _, name := range FlagNames {
		if on, _ := d.Flag(name); on {
			set = append(set, strings.ReplaceAll(name, "_", " "))
		}
	}
	if len(set) > 0 {
		text = fmt.Sprintf("%s (%s)", text, strings.Join(set, ", "))
	}
	return text
}

// TableRow renders the die as a fixed-width row. Flag columns are padded to
// the flag name's width so rows line up no matter which flags are set.
func (d *Die) TableRow() string {
	text := fmt.Sprintf("%-3d %-8s %-11s d%-3d/d%-3d", d.Count, d.Size, d.Color, d.Sides, d.Faces)
	slots := make([]string, len(FlagNames))
	for i, name := range FlagNames {
		if on, _ := d.Flag(name); on {
			slots[i] = strings.ReplaceAll(name, "_", " ")
		} else {
			slots[i] = strings.Repeat(" ", len(name))
		}
	}
	return fmt.Sprintf("%s %s", text, strings.Join(slots, " "))
}

// Data renders the persistence form, one tab-separated line per die type.
func (d *Die) Data() string {
	return fmt.Sprintf("%s\t%d\n", d.Code, d.Count)
}

// TotalCount sums the counts of every die in the collection.
func TotalCount(dice []*Die) int {
	total := 0
	for _, d := range dice {
		total += d.Count
	}
	return total
}
