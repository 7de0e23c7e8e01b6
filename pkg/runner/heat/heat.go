// Package heat provides the activity heatmap runner.
package heat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/habitx/pkg/printers"
	"tableflip.dev/habitx/pkg/stats"
	"tableflip.dev/habitx/pkg/tracker"
)

// Heat prints the trailing activity heatmap, or one calendar month.
type Heat struct {
	WindowDays int
	Month      bool

	Tracker *tracker.Controller
}

func (n *Heat) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not report, no tracker")
	}
	if n.WindowDays <= 0 {
		n.WindowDays = stats.HeatmapWindowDays
	}
	fmt.Println("")

	pp := printers.PrettyPrint{}
	points := n.Tracker.Heatmap(n.WindowDays)

	if n.Month {
		pp.Month(time.Now(), points)
		return nil
	}

	pp.Title("activity")
	pp.Heatmap(points)
	return nil
}
