// Package goals provides runners for long-term goal management.
package goals

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/printers"
	"tableflip.dev/habitx/pkg/tracker"
)

// Add registers a long-term goal and reprints the list.
type Add struct {
	Name   string
	Target float64
	Unit   string
	Color  string

	Tracker *tracker.Controller
}

func (n *Add) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not add, no tracker")
	}
	g := &habit.Goal{Name: n.Name, Target: n.Target, Unit: n.Unit, Color: n.Color}
	if id := n.Tracker.CreateGoal(g); id == "" {
		return fmt.Errorf("could not add goal %q", n.Name)
	}

	pp := printers.PrettyPrint{}
	pp.Title("directives")
	pp.Goals(n.Tracker.Goals()...)
	return nil
}

// List prints the registered goals with progress bars.
type List struct {
	ShowID bool

	Tracker *tracker.Controller
}

func (n *List) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not list, no tracker")
	}
	fmt.Println("")

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	all := n.Tracker.Goals()
	pp.TitleWithCount("directives", len(all))
	pp.Goals(all...)
	return nil
}

// Remove deletes a goal.
type Remove struct {
	Ref string

	Tracker *tracker.Controller
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not remove, no tracker")
	}
	g, ok := n.Tracker.FindGoal(n.Ref)
	if !ok {
		return fmt.Errorf("no goal matches %q", n.Ref)
	}
	if !n.Tracker.DeleteGoal(g.ID) {
		return fmt.Errorf("could not remove goal %q", n.Ref)
	}

	pp := printers.PrettyPrint{}
	pp.Title("directives")
	pp.Goals(n.Tracker.Goals()...)
	return nil
}

// Progress moves a goal's current value by a delta, clamped to its target.
type Progress struct {
	Ref   string
	Delta float64

	Tracker *tracker.Controller
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not adjust, no tracker")
	}
	g, ok := n.Tracker.FindGoal(n.Ref)
	if !ok {
		return fmt.Errorf("no goal matches %q", n.Ref)
	}
	if _, ok := n.Tracker.AdjustGoalProgress(g.ID, n.Delta); !ok {
		return fmt.Errorf("could not adjust goal %q", n.Ref)
	}

	pp := printers.PrettyPrint{}
	pp.Title("directives")
	pp.Goals(n.Tracker.Goals()...)
	return nil
}
