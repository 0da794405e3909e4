package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runScript(t *testing.T, dataPath, script string) string {
	t.Helper()
	var out strings.Builder
	s := New(strings.NewReader(script), &out, dataPath)
	if err := s.Run(); err != nil {
		t.Fatalf("session failed: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dice.dat")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWelcomeCountsDice(t *testing.T) {
	path := writeData(t, "REDM02002000\t2\nBLUS00600600\t4\n")
	out := runScript(t, path, "quit\n")
	if !strings.Contains(out, "You have 6 dice.") {
		t.Fatalf("missing welcome count:\n%s", out)
	}
}

func TestSubsetNarrowsAndReports(t *testing.T) {
	path := writeData(t, "REDM02002000\t2\nBLUS00600600\t4\nBLUM02002000\t1\n")
	out := runScript(t, path, "sub d20\nsub red\nquit\n")
	if !strings.Contains(out, "There are 3 dice in the current subset.") {
		t.Fatalf("missing first subset count:\n%s", out)
	}
	if !strings.Contains(out, "There are 2 dice in the current subset.") {
		t.Fatalf("missing second subset count:\n%s", out)
	}
}

func TestSubsetWarnsOnUnknownToken(t *testing.T) {
	path := writeData(t, "REDM02002000\t2\n")
	out := runScript(t, path, "sub xyz\nquit\n")
	if !strings.Contains(out, "unrecognized filter criteria: xyz.") {
		t.Fatalf("missing warning:\n%s", out)
	}
	if !strings.Contains(out, "There are 2 dice in the current subset.") {
		t.Fatalf("subset should be unchanged:\n%s", out)
	}
}

func TestStoreAndLoadSubsets(t *testing.T) {
	path := writeData(t, "REDM02002000\t2\nBLUS00600600\t4\n")
	script := strings.Join([]string{
		"sub red",
		"store reds",
		"load all",
		"load reds",
		"load nope",
		"quit",
	}, "\n") + "\n"
	out := runScript(t, path, script)
	if !strings.Contains(out, "There are 6 dice in the current subset.") {
		t.Fatalf("load all not reported:\n%s", out)
	}
	if !strings.Contains(out, `There is no stored subset named "nope".`) {
		t.Fatalf("missing unknown-subset message:\n%s", out)
	}
	if strings.Count(out, "There are 2 dice in the current subset.") != 2 {
		t.Fatalf("stored subset not reloaded:\n%s", out)
	}
}

func TestCountByFeature(t *testing.T) {
	path := writeData(t, "REDM02002000\t2\nREDS00600600\t4\nBLUM02002000\t1\n")
	out := runScript(t, path, "count color\ncount sparkle\nquit\n")
	if !strings.Contains(out, "blue 1") || !strings.Contains(out, " red 6") {
		t.Fatalf("missing count groups:\n%s", out)
	}
	if !strings.Contains(out, `Invalid die feature: "sparkle".`) {
		t.Fatalf("missing invalid feature message:\n%s", out)
	}
}

func TestTablePrintsCurrentSubset(t *testing.T) {
	path := writeData(t, "REDM02002000\t2\nBLUS00600600\t4\n")
	out := runScript(t, path, "sub blue\ntable\nquit\n")
	if strings.Contains(out, "red") && strings.Contains(out, "d20") {
		t.Fatalf("table should only show the subset:\n%s", out)
	}
	if !strings.Contains(out, "4   small    blue        d6  /d6  ") {
		t.Fatalf("missing table row:\n%s", out)
	}
}

func TestAddMergesExistingCode(t *testing.T) {
	path := writeData(t, "REDM02002000\t3\n")
	// red is option 13 of the color menu, medium option 2 of the size menu.
	script := strings.Join([]string{
		"add",
		"13", // red
		"2",  // medium
		"20", // sides
		"",   // faces default to sides
		"",   // no flags
		"4",  // count
		"save",
		"quit",
	}, "\n") + "\n"
	out := runScript(t, path, script)
	if !strings.Contains(out, "You now have 7 dice.") {
		t.Fatalf("missing updated total:\n%s", out)
	}
	if !strings.Contains(out, "1 row were written to the stored data.") {
		t.Fatalf("expected a full rewrite:\n%s", out)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "REDM02002000\t7\n" {
		t.Fatalf("unexpected file content: %q", raw)
	}
}

func TestAdd7AppendsNewRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.dat")
	script := strings.Join([]string{
		"add7",
		"13", // red
		"save",
		"quit",
	}, "\n") + "\n"
	out := runScript(t, path, script)
	if !strings.Contains(out, "You now have 7 dice.") {
		t.Fatalf("missing updated total:\n%s", out)
	}
	if !strings.Contains(out, "7 rows were added to the stored data.") {
		t.Fatalf("expected an append:\n%s", out)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("want 7 rows, got %d:\n%s", len(lines), raw)
	}
	if !strings.Contains(string(raw), "REDM01001016\t1\n") {
		t.Fatalf("missing percentile die row:\n%s", raw)
	}
}

func TestQuitOffersToSave(t *testing.T) {
	path := writeData(t, "REDM02002000\t3\n")
	script := strings.Join([]string{
		"add",
		"13", "2", "20", "", "", "1",
		"quit",
		"yes",
	}, "\n") + "\n"
	out := runScript(t, path, script)
	if !strings.Contains(out, "Do you wish to save them?") {
		t.Fatalf("missing save prompt:\n%s", out)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "REDM02002000\t4\n" {
		t.Fatalf("unexpected file content: %q", raw)
	}
}

func TestSaveWithoutChanges(t *testing.T) {
	path := writeData(t, "REDM02002000\t3\n")
	out := runScript(t, path, "save\nquit\n")
	if !strings.Contains(out, "No changes have been made to the collection.") {
		t.Fatalf("missing no-changes message:\n%s", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	path := writeData(t, "REDM02002000\t3\n")
	out := runScript(t, path, "frobnicate\nquit\n")
	if !strings.Contains(out, `I do not recognize the command "frobnicate".`) {
		t.Fatalf("missing unknown command message:\n%s", out)
	}
}

func TestMissingDataFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.dat")
	out := runScript(t, path, "quit\n")
	if !strings.Contains(out, "starting empty") {
		t.Fatalf("missing empty-start notice:\n%s", out)
	}
	if !strings.Contains(out, "You have 0 dice.") {
		t.Fatalf("missing welcome count:\n%s", out)
	}
}
