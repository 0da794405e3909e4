package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFeature marks a count-by-feature call naming a feature dice do
// not have.
var ErrInvalidFeature = errors.New("invalid die feature")

// FeatureCount is one group in a count-by-feature roll-up: a distinct value
// of the feature and the total dice carrying it.
type FeatureCount struct {
	Value string
	Count int
}

// featureAccessors maps feature names to their value on a die. Explicit so
// that feature lookup stays a table scan rather than reflection.
var featureAccessors = map[string]func(*Die) string{
	"color":     func(d *Die) string { return d.Color },
	"size":      func(d *Die) string { return d.Size },
	"sides":     func(d *Die) string { return strconv.Itoa(d.Sides) },
	"faces":     func(d *Die) string { return strconv.Itoa(d.Faces) },
	"art_pip":   func(d *Die) string { return strconv.FormatBool(d.ArtPip) },
	"material":  func(d *Die) string { return strconv.FormatBool(d.Material) },
	"odd_shape": func(d *Die) string { return strconv.FormatBool(d.OddShape) },
	"odd_pip":   func(d *Die) string { return strconv.FormatBool(d.OddPip) },
	"odd_face":  func(d *Die) string { return strconv.FormatBool(d.OddFace) },
}

// CountByFeature groups a collection by one feature of the dice (hyphens and
// underscores are interchangeable in the name), summing counts per distinct
// value. Groups come back in first-seen order.
func CountByFeature(dice []*Die, feature string) ([]FeatureCount, error) {
	name := strings.ReplaceAll(strings.ToLower(feature), "-", "_")
	accessor, ok := featureAccessors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFeature, feature)
	}
	var groups []FeatureCount
	index := make(map[string]int)
	for _, d := range dice {
		value := accessor(d)
		if i, seen := index[value]; seen {
			groups[i].Count += d.Count
		} else {
			index[value] = len(groups)
			groups = append(groups, FeatureCount{Value: value, Count: d.Count})
		}
	}
	return groups, nil
}
