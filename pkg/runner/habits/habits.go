// Package habits provides runners for managing habit definitions.
package habits

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/printers"
	"tableflip.dev/habitx/pkg/tracker"
)

// Add registers a new habit and reprints the list.
type Add struct {
	Name  string
	Icon  string
	Color string

	Tracker *tracker.Controller
}

func (n *Add) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not add, no tracker")
	}
	if id := n.Tracker.CreateHabit(n.Name, n.Icon, n.Color); id == "" {
		return fmt.Errorf("could not add habit %q", n.Name)
	}

	pp := printers.PrettyPrint{}
	pp.Title("protocols")
	pp.Habits(n.Tracker.Habits()...)
	return nil
}

// List prints the registered habits.
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
	all := n.Tracker.Habits()
	pp.TitleWithCount("protocols", len(all))
	pp.Habits(all...)
	return nil
}

// Edit merges new values into an existing habit.
type Edit struct {
	Ref   string
	Name  string
	Icon  string
	Color string

	Tracker *tracker.Controller
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not edit, no tracker")
	}
	h, ok := n.Tracker.FindHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}
	patch := habit.Habit{Name: n.Name, Icon: n.Icon, Color: n.Color}
	if !n.Tracker.UpdateHabit(h.ID, patch) {
		return fmt.Errorf("could not edit habit %q", n.Ref)
	}

	pp := printers.PrettyPrint{}
	pp.Title("protocols")
	pp.Habits(n.Tracker.Habits()...)
	return nil
}

// Remove deletes a habit definition. History keeps its flags.
type Remove struct {
	Ref string

	Tracker *tracker.Controller
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Tracker == nil {
		return errors.New("can not remove, no tracker")
	}
	h, ok := n.Tracker.FindHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}
	if !n.Tracker.DeleteHabit(h.ID) {
		return fmt.Errorf("could not remove habit %q", n.Ref)
	}

	pp := printers.PrettyPrint{}
	pp.Title("protocols")
	pp.Habits(n.Tracker.Habits()...)
	return nil
}
