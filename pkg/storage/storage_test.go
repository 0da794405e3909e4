package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/zocchihedron/dicetrack/pkg/dice"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "dicetrack.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustDie(t *testing.T, code string, count int) *dice.Die {
	t.Helper()
	d, err := dice.New(code, count)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSyncReplacesRows(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first := []*dice.Die{
		mustDie(t, "REDM02002000", 2),
		mustDie(t, "BLUS00600600", 4),
	}
	if err := db.Sync(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := []*dice.Die{
		mustDie(t, "REDM02002000", 3),
		mustDie(t, "GREL01201216", 1),
	}
	if err := db.Sync(ctx, second); err != nil {
		t.Fatal(err)
	}

	counts, err := db.ListCodes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	expect := map[string]int{"REDM02002000": 3, "GREL01201216": 1}
	if !reflect.DeepEqual(counts, expect) {
		t.Fatalf("unexpected rows:\nwant: %v\ngot:  %v", expect, counts)
	}
}

func TestGetStats(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	collection := []*dice.Die{
		mustDie(t, "REDM02002000", 2),
		mustDie(t, "BLUM00600600", 5),
		mustDie(t, "WHIS00400400", 1),
	}
	if err := db.Sync(ctx, collection); err != nil {
		t.Fatal(err)
	}

	stats, err := db.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	expect := []Stat{
		{Size: "medium", DieTypes: 2, DieCount: 7},
		{Size: "small", DieTypes: 1, DieCount: 1},
	}
	if !reflect.DeepEqual(stats, expect) {
		t.Fatalf("unexpected stats:\nwant: %#v\ngot:  %#v", expect, stats)
	}
}
