package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *HistoryDB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	hdb, err := NewHistoryDB(conn)
	if err != nil {
		t.Fatalf("init schema: %v", err)
	}
	t.Cleanup(func() { hdb.Close() })

	return hdb
}

func TestInsertAndRecent(t *testing.T) {

	hdb := openTestDB(t)
	ctx := context.TODO()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	records := []PredictionRecord{
		{ID: "a", Sequence: "ACD", Length: 3, MolecularWeight: 325.3, InstabilityIndex: 12.0, CreatedAt: base},
		{ID: "b", Sequence: "WWWW", Length: 4, MolecularWeight: 762.8, InstabilityIndex: 3.0, CreatedAt: base.Add(time.Minute)},
		{ID: "c", Sequence: "GG", Length: 2, MolecularWeight: 132.1, InstabilityIndex: 66.7, CreatedAt: base.Add(2 * time.Minute)},
	}

	for _, rec := range records {
		if err := hdb.Insert(ctx, rec); err != nil {
			t.Fatalf("insert %s: %v", rec.ID, err)
		}
	}

	got, err := hdb.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("expected newest-first order c, b; got %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Sequence != "GG" || got[0].Length != 2 {
		t.Errorf("row round-trip mismatch: %+v", got[0])
	}
}

func TestRecentOnEmptyTable(t *testing.T) {

	hdb := openTestDB(t)

	got, err := hdb.Recent(context.TODO(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no rows, got %d", len(got))
	}
}

func TestInsertDuplicateIDFails(t *testing.T) {

	hdb := openTestDB(t)
	ctx := context.TODO()

	rec := PredictionRecord{ID: "dup", Sequence: "A", Length: 1, CreatedAt: time.Now()}

	if err := hdb.Insert(ctx, rec); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := hdb.Insert(ctx, rec); err == nil {
		t.Error("expected primary key violation on duplicate insert")
	}
}
