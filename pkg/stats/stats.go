// Package stats derives dashboard numbers from a snapshot of the habit
// registry and the completion history. Everything here is a pure function of
// its inputs plus the provided "today" key; nothing mutates state.
package stats

import (
	"iter"
	"math"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
)

const (
	// HeatmapWindowDays is the default trailing window of the activity
	// heatmap, fourteen weeks ending today.
	HeatmapWindowDays = 98

	// GridWindowDays is the default trailing window of the day-log grid.
	GridWindowDays = 7
)

// DailyProgress is the percentage of registered habits completed on the given
// date, rounded to the nearest integer. Flags for habits no longer in the
// registry are excluded from both numerator and denominator. Zero when the
// registry is empty.
func DailyProgress(store *history.Store, reg *habit.Registry, date datekey.Key) int {
	if reg == nil || reg.Len() == 0 {
		return 0
	}
	rec := store.Get(date)
	done := rec.Done(reg.Has)
	return int(math.Round(float64(done) / float64(reg.Len()) * 100))
}

// HeatmapPoint is one cell of the activity heatmap.
type HeatmapPoint struct {
	Date  datekey.Key
	Count int
}

// HeatmapSeries yields windowDays consecutive {date, count} points ending
// with today inclusive, oldest first. The count is the raw number of true
// flags for the day, including habits that have since been deleted; this is
// looser than DailyProgress and kept that way on purpose. The sequence is
// finite and restartable: ranging over it twice yields the same points.
func HeatmapSeries(store *history.Store, today datekey.Key, windowDays int) iter.Seq[HeatmapPoint] {
	if windowDays <= 0 {
		windowDays = HeatmapWindowDays
	}
	return func(yield func(HeatmapPoint) bool) {
		for i := 1 - windowDays; i <= 0; i++ {
			date := today.AddDays(i)
			if !yield(HeatmapPoint{Date: date, Count: store.Get(date).Done(nil)}) {
				return
			}
		}
	}
}

// DensityBucket tiers a daily completion count into the fixed presentation
// ordinals 0..4.
func DensityBucket(count int) int {
	switch {
	case count <= 0:
		return 0
	case count >= 4:
		return 4
	default:
		return count
	}
}

// WindowDays returns the trailing n calendar days ending today, oldest first,
// synthesizing empty records for dates with no interactions.
func WindowDays(store *history.Store, today datekey.Key, n int) []history.DayRecord {
	if n <= 0 {
		n = GridWindowDays
	}
	out := make([]history.DayRecord, 0, n)
	for _, date := range datekey.Window(today, n) {
		out = append(out, store.Get(date))
	}
	return out
}

// Streak is the number of days with any recorded interaction. Not a
// consecutive-day run; this matches what the dashboard has always shown.
func Streak(store *history.Store) int {
	return store.Len()
}
