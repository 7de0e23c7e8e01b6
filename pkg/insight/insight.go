// Package insight produces the short motivational line shown at the top of
// the dashboard. It snapshots the current stats, asks the summarization
// collaborator for one sentence, and falls back to a fixed message whenever
// that collaborator misbehaves.
package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
	"tableflip.dev/habitx/pkg/stats"
)

// Fallback is shown whenever the summarizer fails or returns nothing.
const Fallback = "NEURAL LINK STABLE. PROCEED WITH PROTOCOLS."

// Initializing is the placeholder before the first fetch completes.
const Initializing = "SYSTEM INITIALIZING..."

// Snapshot is the bounded view of the user's performance handed to the
// summarizer.
type Snapshot struct {
	HabitNames  []string
	Streak      int
	SevenDayAvg int
	Trend       string
}

// BuildSnapshot derives a Snapshot from the live registries and history.
func BuildSnapshot(reg *habit.Registry, store *history.Store, today datekey.Key) Snapshot {
	names := make([]string, 0, reg.Len())
	for _, h := range reg.List() {
		names = append(names, h.Name)
	}
	return Snapshot{
		HabitNames:  names,
		Streak:      stats.Streak(store),
		SevenDayAvg: stats.DailyProgress(store, reg, today),
		Trend:       "optimizing",
	}
}

// Summarizer is the external generative-text collaborator.
type Summarizer interface {
	Summarize(ctx context.Context, snap Snapshot) (string, error)
}

// Requester wraps a Summarizer with the timeout and fallback policy. The
// zero timeout defaults to ten seconds.
type Requester struct {
	Summarizer Summarizer
	Timeout    time.Duration
	Log        *zap.Logger
}

// Fetch returns the insight line for the snapshot. It never returns an
// error: collaborator failures, timeouts, and empty responses all yield the
// fixed fallback.
func (r *Requester) Fetch(ctx context.Context, snap Snapshot) string {
	if r.Summarizer == nil {
		return Fallback
	}
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := r.Summarizer.Summarize(ctx, snap)
	if err != nil {
		if r.Log != nil {
			r.Log.Warn("insight fetch failed", zap.Error(err))
		}
		return Fallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback
	}
	return text
}

// Prompt renders the bounded request sent to the summarizer.
func Prompt(snap Snapshot) string {
	return fmt.Sprintf(`You are an advanced AI personal optimizer in a cyberpunk future.
Analyze the user's habit performance and provide a short, punchy, futuristic insight.

User Stats:
- Active Habits: %s
- Current Streak: %d days
- 7-Day Performance: %d%%
- Trend: %s

Constraint: One sentence, max 15 words. Tone: High-tech, cold but encouraging.`,
		strings.Join(snap.HabitNames, ", "), snap.Streak, snap.SevenDayAvg, snap.Trend)
}
