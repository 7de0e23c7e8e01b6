package datekey

import (
	"testing"
	"time"
)

func TestForSameDayAnyTime(t *testing.T) {
	morning := time.Date(2026, time.March, 3, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, time.March, 3, 23, 59, 59, 0, time.Local)
	if For(morning) != For(night) {
		t.Fatalf("expected equal keys, got %s and %s", For(morning), For(night))
	}
	if For(morning) != "2026-03-03" {
		t.Fatalf("unexpected key: %s", For(morning))
	}
}

func TestParseRoundTrip(t *testing.T) {
	k, err := Parse("2026-02-28")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if For(k.Time()) != k {
		t.Fatalf("round trip mismatch: %s", For(k.Time()))
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse("not-a-date"); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

func TestAfterBefore(t *testing.T) {
	a := Key("2026-01-31")
	b := Key("2026-02-01")
	if !b.After(a) || a.After(b) {
		t.Fatalf("expected %s after %s", b, a)
	}
	if !a.Before(b) {
		t.Fatalf("expected %s before %s", a, b)
	}
}

func TestAddDaysAcrossMonth(t *testing.T) {
	k := Key("2026-01-31")
	if got := k.AddDays(1); got != "2026-02-01" {
		t.Fatalf("expected 2026-02-01, got %s", got)
	}
	if got := k.AddDays(-31); got != "2025-12-31" {
		t.Fatalf("expected 2025-12-31, got %s", got)
	}
}

func TestWindow(t *testing.T) {
	keys := Window("2026-03-03", 3)
	want := []Key{"2026-03-01", "2026-03-02", "2026-03-03"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("index %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestWindowEmpty(t *testing.T) {
	if keys := Window("2026-03-03", 0); keys != nil {
		t.Fatalf("expected nil window, got %v", keys)
	}
}
