// Package datfile reads and writes the flat-file persistence format of the
// collection: one "<code>\t<count>" line per die type.
package datfile

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/zocchihedron/dicetrack/pkg/dice"
)

// Load parses every line of the data file into a die record and returns the
// collection sorted by code ascending. A malformed line or unknown code fails
// the whole load; a partial collection is never returned.
func Load(path string) ([]*dice.Die, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var collection []*dice.Die
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, countText, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%s:%d: missing tab separator", path, lineNo)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad count %q", path, lineNo, countText)
		}
		d, err := dice.New(code, count)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		collection = append(collection, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	sort.Slice(collection, func(i, j int) bool { return collection[i].Code < collection[j].Code })
	return collection, nil
}

// Write rewrites the whole data file from the given collection.
func Write(path string, collection []*dice.Die) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, d := range collection {
		if _, err := w.WriteString(d.Data()); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Append adds rows for newly created die types to the end of the data file
// without touching existing rows.
func Append(path string, newRows []*dice.Die) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	for _, d := range newRows {
		if _, err := f.WriteString(d.Data()); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
