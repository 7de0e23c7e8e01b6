// Package remote defines the persistence collaborator the dashboard syncs
// against: a flat record space with three tables scoped by owner identity.
// Two implementations exist, a PostgREST-style HTTP client for hosted stores
// and a diskv-backed store for local use. Every call can fail with a
// transport error; callers treat failures as non-fatal.
package remote

import (
	"context"
	"errors"
	"fmt"
)

// Table names of the record space.
const (
	TableHabits  = "habits"
	TableGoals   = "goals"
	TableHistory = "history"
)

// Record is one row of a table. Values are whatever the codec produced;
// the helpers below coerce on the way out.
type Record map[string]any

// ErrNotFound is returned when an update or delete names an unknown record.
var ErrNotFound = errors.New("remote: record not found")

// Interface is the CRUD contract of the record store.
type Interface interface {
	List(ctx context.Context, table, ownerID string) ([]Record, error)
	Insert(ctx context.Context, table string, rec Record) (Record, error)
	Update(ctx context.Context, table, id string, partial Record) error
	Delete(ctx context.Context, table, id string) error
	Upsert(ctx context.Context, table, key string, rec Record) error
}

// String reads a string field, tolerating absence.
func (r Record) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}

// Float reads a numeric field. JSON decoding hands back float64; integer
// values from other codecs are coerced.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bools reads a map-of-flags field, the shape of a history row's completions.
func (r Record) Bools(key string) map[string]bool {
	out := map[string]bool{}
	switch v := r[key].(type) {
	case map[string]bool:
		for id, b := range v {
			out[id] = b
		}
	case map[string]any:
		for id, raw := range v {
			if b, ok := raw.(bool); ok {
				out[id] = b
			}
		}
	}
	return out
}

func validTable(table string) error {
	switch table {
	case TableHabits, TableGoals, TableHistory:
		return nil
	}
	return fmt.Errorf("remote: unknown table %q", table)
}
