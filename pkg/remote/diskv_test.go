package remote

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *Diskv {
	t.Helper()
	s, err := NewDiskv(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestDiskvInsertAssignsID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Insert(ctx, TableHabits, Record{"owner_id": "local", "name": "Read"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.String("id") == "" {
		t.Fatalf("expected assigned id")
	}

	rows, err := s.List(ctx, TableHabits, "local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].String("name") != "Read" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestDiskvListScopedByOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Insert(ctx, TableHabits, Record{"owner_id": "alice", "name": "A"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Insert(ctx, TableHabits, Record{"owner_id": "bob", "name": "B"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := s.List(ctx, TableHabits, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].String("name") != "A" {
		t.Fatalf("expected only alice's rows, got %+v", rows)
	}
}

func TestDiskvUpdateMerges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, err := s.Insert(ctx, TableGoals, Record{"owner_id": "local", "name": "Run", "target": 100.0, "current": 10.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Update(ctx, TableGoals, rec.String("id"), Record{"current": 25.0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, _ := s.List(ctx, TableGoals, "local")
	if len(rows) != 1 || rows[0].Float("current") != 25 {
		t.Fatalf("expected merged current, got %+v", rows)
	}
	if rows[0].String("name") != "Run" {
		t.Fatalf("expected untouched name, got %+v", rows[0])
	}
}

func TestDiskvUpdateUnknownID(t *testing.T) {
	s := newTestStore(t)
	if err := s.Update(context.Background(), TableGoals, "missing", Record{"current": 1.0}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskvDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, _ := s.Insert(ctx, TableHabits, Record{"owner_id": "local", "name": "Read"})
	if err := s.Delete(ctx, TableHabits, rec.String("id")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, _ := s.List(ctx, TableHabits, "local")
	if len(rows) != 0 {
		t.Fatalf("expected empty table, got %+v", rows)
	}
}

func TestDiskvUpsertByDateKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := Record{"owner_id": "local", "date": "2026-03-03", "completions": map[string]bool{"a": true}}
	if err := s.Upsert(ctx, TableHistory, "2026-03-03", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec["completions"] = map[string]bool{"a": true, "b": true}
	if err := s.Upsert(ctx, TableHistory, "2026-03-03", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, _ := s.List(ctx, TableHistory, "local")
	if len(rows) != 1 {
		t.Fatalf("expected a single row per date, got %d", len(rows))
	}
	flags := rows[0].Bools("completions")
	if !flags["a"] || !flags["b"] {
		t.Fatalf("expected replaced completions, got %v", flags)
	}
}

func TestDiskvRejectsUnknownTable(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.List(context.Background(), "nope", "local"); err == nil {
		t.Fatalf("expected unknown table error")
	}
}
