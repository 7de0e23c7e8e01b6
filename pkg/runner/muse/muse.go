// Package muse provides the insight one-liner runner.
package muse

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitx/pkg/insight"
	"tableflip.dev/habitx/pkg/printers"
	"tableflip.dev/habitx/pkg/tracker"
)

// Muse fetches and prints the summarizer's one-line status report. Without a
// configured summarizer the requester falls back to its canned line.
type Muse struct {
	Requester *insight.Requester

	Tracker *tracker.Controller
}

func (n *Muse) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not report, no tracker")
	}
	fmt.Println("")

	pp := printers.PrettyPrint{}
	snap := n.Tracker.InsightSnapshot()

	text := insight.Fallback
	if n.Requester != nil {
		text = n.Requester.Fetch(ctx, snap)
	}
	pp.Insight(text)
	return nil
}
