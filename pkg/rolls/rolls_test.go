package rolls

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCleanFillsBlankCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.dat")
	if err := os.WriteFile(path, []byte("20\t\n13\t2\n7\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Clean(path); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "20\t1\n13\t2\n7\t1\n" {
		t.Fatalf("unexpected content: %q", raw)
	}
}

func TestReadSumsCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.dat")
	if err := os.WriteFile(path, []byte("20\t1\n13\t2\n20\t3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tally, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tally, map[int]int{20: 4, 13: 2}) {
		t.Fatalf("unexpected tally: %v", tally)
	}
	if !reflect.DeepEqual(Values(tally), []int{13, 20}) {
		t.Fatalf("unexpected values: %v", Values(tally))
	}
}

func TestReadRejectsBadLines(t *testing.T) {
	for _, content := range []string{"20 1\n", "x\t1\n", "20\ty\n"} {
		path := filepath.Join(t.TempDir(), "rolls.dat")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Read(path); err == nil {
			t.Errorf("%q: read succeeded, want error", content)
		}
	}
}
