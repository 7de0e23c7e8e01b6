// Package ui provides the runner that opens the interactive dashboard.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/habitx/pkg/insight"
	"tableflip.dev/habitx/pkg/tracker"
	"tableflip.dev/habitx/pkg/tui"
)

// UI opens the full-screen dashboard.
type UI struct {
	Requester *insight.Requester

	Tracker *tracker.Controller
}

func (d *UI) Do(ctx context.Context) error {
	if d.Tracker == nil {
		return errors.New("can not open the dashboard, no tracker")
	}
	return tui.Run(ctx, d.Tracker, d.Requester)
}
