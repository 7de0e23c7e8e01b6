package history

import (
	"testing"

	"tableflip.dev/habitx/pkg/datekey"
)

const fixedToday = datekey.Key("2026-03-03")

func fixedStore() *Store {
	return NewStoreAt(func() datekey.Key { return fixedToday })
}

func TestGetAbsentIsAllFalse(t *testing.T) {
	s := fixedStore()
	rec := s.Get("2026-03-01")
	if rec.Date != "2026-03-01" {
		t.Fatalf("unexpected date: %s", rec.Date)
	}
	if len(rec.Completions) != 0 {
		t.Fatalf("expected empty completions, got %v", rec.Completions)
	}
}

func TestSetCompletionCreatesAndFlips(t *testing.T) {
	s := fixedStore()
	rec, ok := s.SetCompletion(fixedToday, "a", true)
	if !ok {
		t.Fatalf("expected set to apply")
	}
	if !rec.Completions["a"] {
		t.Fatalf("expected a=true, got %v", rec.Completions)
	}

	rec, ok = s.SetCompletion(fixedToday, "b", false)
	if !ok {
		t.Fatalf("expected set to apply")
	}
	if !rec.Completions["a"] || rec.Completions["b"] {
		t.Fatalf("expected a untouched and b=false, got %v", rec.Completions)
	}
}

func TestSetCompletionIdempotent(t *testing.T) {
	s := fixedStore()
	s.SetCompletion(fixedToday, "a", true)
	s.SetCompletion(fixedToday, "a", true)
	rec := s.Get(fixedToday)
	if !rec.Completions["a"] || len(rec.Completions) != 1 {
		t.Fatalf("unexpected record: %v", rec.Completions)
	}
}

func TestSetCompletionIsolatedPerDate(t *testing.T) {
	s := fixedStore()
	s.SetCompletion("2026-03-01", "a", true)
	s.SetCompletion("2026-03-02", "a", false)
	if got := s.Get("2026-03-01").Completions["a"]; !got {
		t.Fatalf("expected 2026-03-01 a=true")
	}
	if got := s.Get("2026-03-02").Completions["a"]; got {
		t.Fatalf("expected 2026-03-02 a=false")
	}
}

func TestSetCompletionRejectsFutureDates(t *testing.T) {
	s := fixedStore()
	rec, ok := s.SetCompletion(fixedToday.AddDays(1), "a", true)
	if ok {
		t.Fatalf("expected future date rejection")
	}
	if len(rec.Completions) != 0 {
		t.Fatalf("expected all-false record, got %v", rec.Completions)
	}
	if s.Len() != 0 {
		t.Fatalf("expected no record created")
	}
}

func TestToggleFlips(t *testing.T) {
	s := fixedStore()
	rec, _ := s.Toggle(fixedToday, "a")
	if !rec.Completions["a"] {
		t.Fatalf("expected toggle on")
	}
	rec, _ = s.Toggle(fixedToday, "a")
	if rec.Completions["a"] {
		t.Fatalf("expected toggle off")
	}
}

func TestUpsertReplacesFullSet(t *testing.T) {
	s := fixedStore()
	s.SetCompletion(fixedToday, "a", true)
	s.Upsert(fixedToday, map[string]bool{"b": true})
	rec := s.Get(fixedToday)
	if _, ok := rec.Completions["a"]; ok {
		t.Fatalf("expected a replaced away, got %v", rec.Completions)
	}
	if !rec.Completions["b"] {
		t.Fatalf("expected b=true, got %v", rec.Completions)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := fixedStore()
	s.SetCompletion(fixedToday, "a", true)
	rec := s.Get(fixedToday)
	rec.Completions["a"] = false
	if !s.Get(fixedToday).Completions["a"] {
		t.Fatalf("expected store unaffected by caller mutation")
	}
}

func TestAllSortedOldestFirst(t *testing.T) {
	s := fixedStore()
	s.Upsert("2026-03-02", map[string]bool{"a": true})
	s.Upsert("2026-02-27", map[string]bool{"a": true})
	s.Upsert("2026-03-01", nil)
	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	want := []datekey.Key{"2026-02-27", "2026-03-01", "2026-03-02"}
	for i, rec := range all {
		if rec.Date != want[i] {
			t.Fatalf("index %d: expected %s, got %s", i, want[i], rec.Date)
		}
	}
}

func TestDoneWithKeepFilter(t *testing.T) {
	rec := DayRecord{Date: fixedToday, Completions: map[string]bool{
		"a": true, "b": true, "ghost": true, "c": false,
	}}
	live := map[string]bool{"a": true, "b": true, "c": true}
	got := rec.Done(func(id string) bool { return live[id] })
	if got != 2 {
		t.Fatalf("expected 2 live completions, got %d", got)
	}
	if rec.Done(nil) != 3 {
		t.Fatalf("expected 3 unfiltered completions, got %d", rec.Done(nil))
	}
}
