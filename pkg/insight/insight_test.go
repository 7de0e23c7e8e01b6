package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
)

type fakeSummarizer struct {
	text string
	err  error
	snap Snapshot
}

func (f *fakeSummarizer) Summarize(ctx context.Context, snap Snapshot) (string, error) {
	f.snap = snap
	return f.text, f.err
}

func TestFetchReturnsSummarizerText(t *testing.T) {
	r := &Requester{Summarizer: &fakeSummarizer{text: "  OPTIMIZATION NOMINAL.  "}}
	got := r.Fetch(context.Background(), Snapshot{})
	if got != "OPTIMIZATION NOMINAL." {
		t.Fatalf("unexpected insight: %q", got)
	}
}

func TestFetchFallsBackOnError(t *testing.T) {
	r := &Requester{Summarizer: &fakeSummarizer{err: errors.New("quota exceeded")}}
	if got := r.Fetch(context.Background(), Snapshot{}); got != Fallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestFetchFallsBackOnEmpty(t *testing.T) {
	r := &Requester{Summarizer: &fakeSummarizer{text: "   "}}
	if got := r.Fetch(context.Background(), Snapshot{}); got != Fallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestFetchWithoutSummarizer(t *testing.T) {
	r := &Requester{}
	if got := r.Fetch(context.Background(), Snapshot{}); got != Fallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestBuildSnapshot(t *testing.T) {
	today := datekey.Key("2026-03-03")
	store := history.NewStoreAt(func() datekey.Key { return today })
	store.Upsert(today, map[string]bool{"a": true, "b": false})
	store.Upsert("2026-03-01", map[string]bool{"a": true})

	reg := habit.NewRegistry(
		&habit.Habit{ID: "a", Name: "Exercise"},
		&habit.Habit{ID: "b", Name: "Read"},
	)

	snap := BuildSnapshot(reg, store, today)
	if len(snap.HabitNames) != 2 || snap.HabitNames[0] != "Exercise" {
		t.Fatalf("unexpected names: %v", snap.HabitNames)
	}
	if snap.Streak != 2 {
		t.Fatalf("expected streak 2, got %d", snap.Streak)
	}
	if snap.SevenDayAvg != 50 {
		t.Fatalf("expected 50, got %d", snap.SevenDayAvg)
	}
	if snap.Trend != "optimizing" {
		t.Fatalf("unexpected trend: %s", snap.Trend)
	}
}

func TestPromptIsBounded(t *testing.T) {
	p := Prompt(Snapshot{HabitNames: []string{"Exercise", "Read"}, Streak: 4, SevenDayAvg: 50, Trend: "optimizing"})
	if !strings.Contains(p, "Exercise, Read") {
		t.Fatalf("expected habit names in prompt: %s", p)
	}
	if !strings.Contains(p, "max 15 words") {
		t.Fatalf("expected single-sentence constraint in prompt")
	}
}
