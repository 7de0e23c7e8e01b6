// Package toggle provides the runner that flips a habit completion flag.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/printers"
	"tableflip.dev/habitx/pkg/stats"
	"tableflip.dev/habitx/pkg/tracker"
)

// Toggle flips one habit flag for a date and reprints the week grid.
type Toggle struct {
	Ref  string
	Date datekey.Key

	Tracker *tracker.Controller
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not toggle, no tracker")
	}
	if n.Date == "" {
		n.Date = datekey.Today()
	}

	h, ok := n.Tracker.FindHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}
	if _, ok := n.Tracker.ToggleCompletion(n.Date, h.ID); !ok {
		return fmt.Errorf("can not record %q on %s", h.Name, n.Date)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(string(n.Date))
	pp.WeekGrid(n.Tracker.Habits(), n.Tracker.Window(stats.GridWindowDays))
	pp.Progress(n.Tracker.Progress(n.Date))
	return nil
}
