// Package rolls handles roll-tally data files: "<value>\t<count>" lines
// recorded while testing dice for fairness. It is unrelated to the collection
// format, beyond sharing the tab-separated shape.
package rolls

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Clean rewrites a tally file whose count column was left blank on some
// lines, treating a blank count as 1.
func Clean(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		if strings.HasSuffix(line, "\t") {
			lines[i] = line + "1"
		}
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
}

// Read tallies a roll data file, summing counts per rolled value.
func Read(path string) (map[int]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tally := make(map[int]int)
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		valueText, countText, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%s:%d: missing tab separator", path, i+1)
		}
		value, err := strconv.Atoi(strings.TrimSpace(valueText))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad value %q", path, i+1, valueText)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad count %q", path, i+1, countText)
		}
		tally[value] += count
	}
	return tally, nil
}

// Values returns the tallied values in ascending order.
func Values(tally map[int]int) []int {
	values := make([]int, 0, len(tally))
	for v := range tally {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}
