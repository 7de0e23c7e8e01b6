package habit

import (
	"math"
	"testing"
)

func TestGoalAddClampsCurrent(t *testing.T) {
	r := NewGoalRegistry()
	id := r.Add(&Goal{Name: "Run", Target: 100, Current: 250, Unit: "km"})
	if id == "" {
		t.Fatalf("expected goal accepted")
	}
	g, _ := r.Get(id)
	if g.Current != 100 {
		t.Fatalf("expected current clamped to target, got %v", g.Current)
	}
}

func TestGoalAddRejectsNonPositiveTarget(t *testing.T) {
	r := NewGoalRegistry()
	if id := r.Add(&Goal{Name: "Run", Target: 0}); id != "" {
		t.Fatalf("expected rejection for zero target")
	}
	if id := r.Add(&Goal{Name: "Run", Target: -5}); id != "" {
		t.Fatalf("expected rejection for negative target")
	}
}

func TestAdjustProgressClampsHigh(t *testing.T) {
	r := NewGoalRegistry(&Goal{ID: "g1", Name: "Run", Target: 100, Current: 90})
	got, ok := r.AdjustProgress("g1", 50)
	if !ok {
		t.Fatalf("expected adjustment to apply")
	}
	if got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
}

func TestAdjustProgressClampsLow(t *testing.T) {
	r := NewGoalRegistry(&Goal{ID: "g1", Name: "Run", Target: 100, Current: 90})
	got, ok := r.AdjustProgress("g1", -200)
	if !ok {
		t.Fatalf("expected adjustment to apply")
	}
	if got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
}

func TestAdjustProgressRejectsNonFinite(t *testing.T) {
	r := NewGoalRegistry(&Goal{ID: "g1", Name: "Run", Target: 100, Current: 40})
	if _, ok := r.AdjustProgress("g1", math.NaN()); ok {
		t.Fatalf("expected NaN delta rejected")
	}
	if _, ok := r.AdjustProgress("g1", math.Inf(1)); ok {
		t.Fatalf("expected Inf delta rejected")
	}
	g, _ := r.Get("g1")
	if g.Current != 40 {
		t.Fatalf("expected untouched current, got %v", g.Current)
	}
}

func TestAdjustProgressUnknownID(t *testing.T) {
	r := NewGoalRegistry()
	if _, ok := r.AdjustProgress("missing", 5); ok {
		t.Fatalf("expected no-op for unknown id")
	}
}

func TestGoalUpdateReclamps(t *testing.T) {
	r := NewGoalRegistry(&Goal{ID: "g1", Name: "Pages", Target: 500, Current: 400, Unit: "pages"})
	if !r.Update("g1", Goal{Target: 300}) {
		t.Fatalf("expected update to apply")
	}
	g, _ := r.Get("g1")
	if g.Current != 300 {
		t.Fatalf("expected current re-clamped to 300, got %v", g.Current)
	}
}

func TestGoalPercent(t *testing.T) {
	g := &Goal{Target: 3, Current: 1}
	if got := g.Percent(); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	zero := &Goal{}
	if got := zero.Percent(); got != 0 {
		t.Fatalf("expected 0 for zero target, got %d", got)
	}
}
