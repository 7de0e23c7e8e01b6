// Package history holds the per-day completion records. One record exists per
// calendar day that has at least one interaction; a missing record reads the
// same as a record with every flag false.
package history

import (
	"sort"

	"tableflip.dev/habitx/pkg/datekey"
)

// DayRecord maps habit ids to completion flags for one calendar day.
type DayRecord struct {
	Date        datekey.Key     `json:"date"`
	Completions map[string]bool `json:"completions"`
}

// Empty returns the all-false record for a date.
func Empty(date datekey.Key) DayRecord {
	return DayRecord{Date: date, Completions: map[string]bool{}}
}

// Done counts the true flags, optionally restricted to ids accepted by keep.
// A nil keep counts every flag.
func (d DayRecord) Done(keep func(id string) bool) int {
	n := 0
	for id, ok := range d.Completions {
		if !ok {
			continue
		}
		if keep != nil && !keep(id) {
			continue
		}
		n++
	}
	return n
}

func (d DayRecord) clone() DayRecord {
	out := DayRecord{Date: d.Date, Completions: make(map[string]bool, len(d.Completions))}
	for id, v := range d.Completions {
		out.Completions[id] = v
	}
	return out
}

// Store is the in-memory date-keyed record collection. Dates are unique
// within the store; records are never deleted, only flipped or replaced.
type Store struct {
	records map[datekey.Key]DayRecord

	// today is injectable so the future-date guard is testable.
	today func() datekey.Key
}

func NewStore() *Store {
	return &Store{
		records: make(map[datekey.Key]DayRecord),
		today:   datekey.Today,
	}
}

// NewStoreAt pins "today" for the future-date guard. Tests use this to keep
// date arithmetic deterministic.
func NewStoreAt(today func() datekey.Key) *Store {
	s := NewStore()
	if today != nil {
		s.today = today
	}
	return s
}

// Get returns the record for the date, or the empty all-false record when the
// date has never been touched. The result is a copy.
func (s *Store) Get(date datekey.Key) DayRecord {
	if rec, ok := s.records[date]; ok {
		return rec.clone()
	}
	return Empty(date)
}

// SetCompletion flips a single habit's flag for the date, creating the record
// if absent, and returns the updated record. Dates strictly after today are
// rejected and the untouched (empty) record returned with ok=false.
func (s *Store) SetCompletion(date datekey.Key, habitID string, value bool) (DayRecord, bool) {
	if date.After(s.today()) {
		return s.Get(date), false
	}
	rec, ok := s.records[date]
	if !ok {
		rec = Empty(date)
	}
	rec.Completions[habitID] = value
	s.records[date] = rec
	return rec.clone(), true
}

// Toggle flips the current flag for the habit on the date.
func (s *Store) Toggle(date datekey.Key, habitID string) (DayRecord, bool) {
	return s.SetCompletion(date, habitID, !s.Get(date).Completions[habitID])
}

// Upsert replaces or creates the full completion set for a date. Used when
// reconciling records fetched from the remote store; no future-date guard
// because remote rows are treated as authoritative.
func (s *Store) Upsert(date datekey.Key, completions map[string]bool) {
	rec := Empty(date)
	for id, v := range completions {
		rec.Completions[id] = v
	}
	s.records[date] = rec
}

// All returns every record ordered by date, oldest first. Records are copies.
func (s *Store) All() []DayRecord {
	out := make([]DayRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Len is the number of days with at least one recorded interaction.
func (s *Store) Len() int {
	return len(s.records)
}

// Reset discards all records, used when a session ends.
func (s *Store) Reset() {
	s.records = make(map[datekey.Key]DayRecord)
}
