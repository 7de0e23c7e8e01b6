// Package habit defines the tracked habit ("protocol") and long-term goal
// ("milestone") model, and the ordered registries that hold them.
package habit

import (
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/habitx/pkg/glyph"
)

// Habit is a recurring protocol the user checks off day by day.
type Habit struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

// New creates a habit definition with a fresh identifier.
func New(name, icon, color string) *Habit {
	return &Habit{
		ID:    uuid.NewString(),
		Name:  name,
		Icon:  icon,
		Color: color,
	}
}

func (h *Habit) Glyph() glyph.Glyph {
	return glyph.ForTag(h.Icon)
}

// Seed returns the starter habits shown when an account has none yet.
func Seed() []*Habit {
	return []*Habit{
		{ID: "1", Name: "Neural Focus", Icon: "Zap", Color: "#58a6ff"},
		{ID: "2", Name: "Physical Upkeep", Icon: "Activity", Color: "#bc8cff"},
	}
}

// Registry is an ordered, identifier-keyed collection of habits. Order is
// insertion order; identifiers are unique within the registry.
type Registry struct {
	order []*Habit
	byID  map[string]*Habit
}

func NewRegistry(habits ...*Habit) *Registry {
	r := &Registry{byID: make(map[string]*Habit)}
	for _, h := range habits {
		r.Add(h)
	}
	return r
}

// Add appends a habit and returns its id. A habit with an empty name, or an
// id already present, is rejected and the empty string returned.
func (r *Registry) Add(h *Habit) string {
	if h == nil || strings.TrimSpace(h.Name) == "" {
		return ""
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if _, exists := r.byID[h.ID]; exists {
		return ""
	}
	r.order = append(r.order, h)
	r.byID[h.ID] = h
	return h.ID
}

// Update merges the non-empty fields of patch into the habit with the given
// id. Unknown ids are a silent no-op.
func (r *Registry) Update(id string, patch Habit) bool {
	h, ok := r.byID[id]
	if !ok {
		return false
	}
	if name := strings.TrimSpace(patch.Name); name != "" {
		h.Name = name
	}
	if patch.Icon != "" {
		h.Icon = patch.Icon
	}
	if patch.Color != "" {
		h.Color = patch.Color
	}
	return true
}

// Remove deletes the habit with the given id. Historical completions that
// reference it are left alone; aggregation treats them as orphaned.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	for i, h := range r.order {
		if h.ID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Get(id string) (*Habit, bool) {
	h, ok := r.byID[id]
	return h, ok
}

func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// List returns the habits in insertion order. The slice is a copy; the
// elements are shared.
func (r *Registry) List() []*Habit {
	out := make([]*Habit, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Reset discards every habit, used when a session ends.
func (r *Registry) Reset(habits ...*Habit) {
	r.order = nil
	r.byID = make(map[string]*Habit)
	for _, h := range habits {
		r.Add(h)
	}
}
