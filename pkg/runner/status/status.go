// Package status provides the dashboard summary runner.
package status

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/printers"
	"tableflip.dev/habitx/pkg/stats"
	"tableflip.dev/habitx/pkg/tracker"
)

// Status prints today's progress, the streak, the trailing week grid, and
// the goals.
type Status struct {
	ShowID bool

	Tracker *tracker.Controller
}

func (n *Status) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not report, no tracker")
	}
	fmt.Println("")

	today := datekey.Today()
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	pp.Title(string(today))
	pp.Progress(n.Tracker.Progress(today))

	pp.WeekGrid(n.Tracker.Habits(), n.Tracker.Window(stats.GridWindowDays))

	pp.TitleWithCount("directives", len(n.Tracker.Goals()))
	pp.Goals(n.Tracker.Goals()...)

	streak := n.Tracker.Streak()
	switch streak {
	case 1:
		fmt.Printf("%d day on record\n\n", streak)
	default:
		fmt.Printf("%d days on record\n\n", streak)
	}
	return nil
}
