package tracker

import (
	"context"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
	"tableflip.dev/habitx/pkg/remote"
)

// mirrorOp is one queued remote write. Kind is for the log only.
type mirrorOp struct {
	table string
	kind  string
	apply func(ctx context.Context, store remote.Interface) error
}

// ToggleCompletion flips one habit flag for a date and mirrors the whole day
// record keyed by date. Future dates and anonymous state are no-ops; the
// returned record is the post-toggle state.
func (c *Controller) ToggleCompletion(date datekey.Key, habitID string) (history.DayRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() {
		return history.Empty(date), false
	}
	rec, ok := c.history.Toggle(date, habitID)
	if !ok {
		return rec, false
	}
	owner := c.session.Owner
	row := encodeDay(owner, rec)
	c.enqueue(mirrorOp{
		table: remote.TableHistory,
		kind:  "upsert",
		apply: func(ctx context.Context, store remote.Interface) error {
			return store.Upsert(ctx, remote.TableHistory, string(rec.Date), row)
		},
	})
	return rec, true
}

// CreateHabit registers a new habit and mirrors it. The returned id is empty
// when the controller is not ready or the registry rejects the habit.
func (c *Controller) CreateHabit(name, icon, color string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() {
		return ""
	}
	h := habit.New(name, icon, color)
	id := c.habits.Add(h)
	if id == "" {
		return ""
	}
	row := encodeHabit(c.session.Owner, h)
	c.enqueue(mirrorOp{
		table: remote.TableHabits,
		kind:  "insert",
		apply: func(ctx context.Context, store remote.Interface) error {
			_, err := store.Insert(ctx, remote.TableHabits, row)
			return err
		},
	})
	return id
}

// UpdateHabit merges the non-empty fields of patch into an existing habit.
func (c *Controller) UpdateHabit(id string, patch habit.Habit) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() || !c.habits.Update(id, patch) {
		return false
	}
	h, _ := c.habits.Get(id)
	row := encodeHabit(c.session.Owner, h)
	delete(row, "id")
	c.enqueue(mirrorOp{
		table: remote.TableHabits,
		kind:  "update",
		apply: func(ctx context.Context, store remote.Interface) error {
			return store.Update(ctx, remote.TableHabits, id, row)
		},
	})
	return true
}

// DeleteHabit removes a habit definition. Historical completion flags keep
// the id; they simply stop counting toward daily progress.
func (c *Controller) DeleteHabit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() || !c.habits.Remove(id) {
		return false
	}
	c.enqueue(mirrorOp{
		table: remote.TableHabits,
		kind:  "delete",
		apply: func(ctx context.Context, store remote.Interface) error {
			return store.Delete(ctx, remote.TableHabits, id)
		},
	})
	return true
}

// CreateGoal registers a long-term goal and mirrors it.
func (c *Controller) CreateGoal(g *habit.Goal) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() {
		return ""
	}
	id := c.goals.Add(g)
	if id == "" {
		return ""
	}
	row := encodeGoal(c.session.Owner, g)
	c.enqueue(mirrorOp{
		table: remote.TableGoals,
		kind:  "insert",
		apply: func(ctx context.Context, store remote.Interface) error {
			_, err := store.Insert(ctx, remote.TableGoals, row)
			return err
		},
	})
	return id
}

// UpdateGoal merges the non-zero fields of patch into an existing goal.
func (c *Controller) UpdateGoal(id string, patch habit.Goal) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() || !c.goals.Update(id, patch) {
		return false
	}
	c.mirrorGoalLocked(id)
	return true
}

// DeleteGoal removes a goal.
func (c *Controller) DeleteGoal(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() || !c.goals.Remove(id) {
		return false
	}
	c.enqueue(mirrorOp{
		table: remote.TableGoals,
		kind:  "delete",
		apply: func(ctx context.Context, store remote.Interface) error {
			return store.Delete(ctx, remote.TableGoals, id)
		},
	})
	return true
}

// AdjustGoalProgress moves a goal's current value by delta, clamped to
// [0, target], and mirrors the new absolute value.
func (c *Controller) AdjustGoalProgress(id string, delta float64) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.readyLocked() {
		return 0, false
	}
	current, ok := c.goals.AdjustProgress(id, delta)
	if !ok {
		return 0, false
	}
	c.mirrorGoalLocked(id)
	return current, true
}

func (c *Controller) mirrorGoalLocked(id string) {
	g, ok := c.goals.Get(id)
	if !ok {
		return
	}
	row := encodeGoal(c.session.Owner, g)
	delete(row, "id")
	c.enqueue(mirrorOp{
		table: remote.TableGoals,
		kind:  "update",
		apply: func(ctx context.Context, store remote.Interface) error {
			return store.Update(ctx, remote.TableGoals, id, row)
		},
	})
}
