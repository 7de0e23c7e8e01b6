package habit

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Goal is a long-term milestone with a numeric target. Current always rests
// inside [0, Target].
type Goal struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
	Unit    string  `json:"unit,omitempty"`
	Color   string  `json:"color,omitempty"`
}

// Percent reports progress toward the target, rounded to the nearest integer.
func (g *Goal) Percent() int {
	if g.Target <= 0 {
		return 0
	}
	return int(math.Round(g.Current / g.Target * 100))
}

// GoalRegistry is an ordered, identifier-keyed collection of goals.
type GoalRegistry struct {
	order []*Goal
	byID  map[string]*Goal
}

func NewGoalRegistry(goals ...*Goal) *GoalRegistry {
	r := &GoalRegistry{byID: make(map[string]*Goal)}
	for _, g := range goals {
		r.Add(g)
	}
	return r
}

// Add appends a goal and returns its id. Goals with an empty name, a
// non-positive target, or a duplicate id are rejected.
func (r *GoalRegistry) Add(g *Goal) string {
	if g == nil || strings.TrimSpace(g.Name) == "" || g.Target <= 0 {
		return ""
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if _, exists := r.byID[g.ID]; exists {
		return ""
	}
	g.Current = clamp(g.Current, 0, g.Target)
	r.order = append(r.order, g)
	r.byID[g.ID] = g
	return g.ID
}

// Update merges non-zero fields of patch. Unknown ids no-op. A new target
// re-clamps the current value.
func (r *GoalRegistry) Update(id string, patch Goal) bool {
	g, ok := r.byID[id]
	if !ok {
		return false
	}
	if name := strings.TrimSpace(patch.Name); name != "" {
		g.Name = name
	}
	if patch.Target > 0 {
		g.Target = patch.Target
	}
	if patch.Unit != "" {
		g.Unit = patch.Unit
	}
	if patch.Color != "" {
		g.Color = patch.Color
	}
	g.Current = clamp(g.Current, 0, g.Target)
	return true
}

func (r *GoalRegistry) Remove(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, g := range r.order {
		if g.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// AdjustProgress applies a bounded increment to the goal's current value and
// returns the new absolute value. Non-finite deltas and unknown ids are
// silent no-ops.
func (r *GoalRegistry) AdjustProgress(id string, delta float64) (float64, bool) {
	g, ok := r.byID[id]
	if !ok {
		return 0, false
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return g.Current, false
	}
	g.Current = clamp(g.Current+delta, 0, g.Target)
	return g.Current, true
}

func (r *GoalRegistry) Get(id string) (*Goal, bool) {
	g, ok := r.byID[id]
	return g, ok
}

func (r *GoalRegistry) List() []*Goal {
	out := make([]*Goal, len(r.order))
	copy(out, r.order)
	return out
}

func (r *GoalRegistry) Len() int {
	return len(r.order)
}

func (r *GoalRegistry) Reset(goals ...*Goal) {
	r.order = nil
	r.byID = make(map[string]*Goal)
	for _, g := range goals {
		r.Add(g)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
