// Package importer merges die records from external exports into the
// collection. It understands the native dat format, JSON exports, and HTML
// table exports (the kind a spreadsheet saves), from local files or URLs.
package importer

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/zocchihedron/dicetrack/pkg/dice"
)

// Record is one imported (code, count) pair, not yet merged.
type Record struct {
	Code  string
	Count int
}

// Fetch reads the raw bytes of an import source. HTTP and HTTPS locations are
// fetched with retries, anything else is treated as a local file path.
func Fetch(location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		client := retryablehttp.NewClient()
		client.RetryMax = 3
		client.Logger = nil
		resp, err := client.Get(location)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: unexpected status %d", location, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(location)
}

// Parse extracts records from raw export data. Format is one of "dat",
// "json", or "html". Every record is validated by decoding its code.
func Parse(data []byte, format string) ([]Record, error) {
	var (
		records []Record
		err     error
	)
	switch format {
	case "dat":
		records, err = parseDat(data)
	case "json":
		records, err = parseJSON(data)
	case "html":
		records, err = parseHTML(data)
	default:
		return nil, fmt.Errorf("unknown import format: %q", format)
	}
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if _, err := dice.New(r.Code, r.Count); err != nil {
			return nil, err
		}
		if r.Count < 1 {
			return nil, fmt.Errorf("bad count %d for code %s", r.Count, r.Code)
		}
	}
	return records, nil
}

func parseDat(data []byte) ([]Record, error) {
	var records []Record
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, countText, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: missing tab separator", i+1)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad count %q", i+1, countText)
		}
		records = append(records, Record{Code: code, Count: count})
	}
	return records, nil
}

// parseJSON accepts an array of objects carrying either a ready-made code or
// the individual die features:
//
//	[{"code": "REDM02002000", "count": 2},
//	 {"color": "blue", "size": "small", "sides": 6, "count": 4}]
//
// Faces default to sides and flags may be a number or an object of booleans
// keyed by flag name.
func parseJSON(data []byte) ([]Record, error) {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("json import must be an array of records")
	}
	var records []Record
	var err error
	parsed.ForEach(func(_, item gjson.Result) bool {
		count := int(item.Get("count").Int())
		code := item.Get("code").String()
		if code == "" {
			code, err = encodeItem(item)
			if err != nil {
				return false
			}
		}
		records = append(records, Record{Code: code, Count: count})
		return true
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func encodeItem(item gjson.Result) (string, error) {
	sides := int(item.Get("sides").Int())
	faces := sides
	if f := item.Get("faces"); f.Exists() {
		faces = int(f.Int())
	}
	flags := 0
	if f := item.Get("flags"); f.Exists() {
		if f.IsObject() {
			for i, name := range dice.FlagNames {
				if f.Get(name).Bool() {
					flags |= 1 << i
				}
			}
		} else {
			flags = int(f.Int())
		}
	}
	return dice.Encode(item.Get("color").String(), item.Get("size").String(), sides, faces, flags)
}

// parseHTML reads the first table in the document, expecting a code in the
// first cell of each row and a count in the second. Header rows are skipped.
func parseHTML(data []byte) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var records []Record
	doc.Find("table").First().Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return true
		}
		code := strings.TrimSpace(cells.Eq(0).Text())
		countText := strings.TrimSpace(cells.Eq(1).Text())
		count, convErr := strconv.Atoi(countText)
		if convErr != nil {
			err = fmt.Errorf("table row %d: bad count %q", i+1, countText)
			return false
		}
		records = append(records, Record{Code: code, Count: count})
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no table rows found in html import")
	}
	return records, nil
}

// Merge folds imported records into the collection. Records matching an
// existing code bump its count; the rest become new die types. It returns the
// merged collection, the newly created records, and whether any existing
// count changed.
func Merge(collection []*dice.Die, records []Record) ([]*dice.Die, []*dice.Die, bool, error) {
	byCode := make(map[string]*dice.Die, len(collection))
	for _, d := range collection {
		byCode[d.Code] = d
	}
	var newRows []*dice.Die
	changed := false
	for _, r := range records {
		if existing, ok := byCode[r.Code]; ok {
			existing.Add(r.Count)
			changed = true
			continue
		}
		d, err := dice.New(r.Code, r.Count)
		if err != nil {
			return nil, nil, false, err
		}
		collection = append(collection, d)
		byCode[r.Code] = d
		newRows = append(newRows, d)
	}
	return collection, newRows, changed, nil
}
