package tracker

import (
	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
	"tableflip.dev/habitx/pkg/remote"
)

// Codecs between domain types and the remote's row shape. Every row carries
// owner_id so the store can scope queries to one account.

func encodeHabit(owner string, h *habit.Habit) remote.Record {
	return remote.Record{
		"id":       h.ID,
		"owner_id": owner,
		"name":     h.Name,
		"icon":     h.Icon,
		"color":    h.Color,
	}
}

func decodeHabit(rec remote.Record) *habit.Habit {
	h := &habit.Habit{
		ID:    rec.String("id"),
		Name:  rec.String("name"),
		Icon:  rec.String("icon"),
		Color: rec.String("color"),
	}
	if h.ID == "" || h.Name == "" {
		return nil
	}
	return h
}

func encodeGoal(owner string, g *habit.Goal) remote.Record {
	return remote.Record{
		"id":       g.ID,
		"owner_id": owner,
		"name":     g.Name,
		"target":   g.Target,
		"current":  g.Current,
		"unit":     g.Unit,
		"color":    g.Color,
	}
}

func decodeGoal(rec remote.Record) *habit.Goal {
	g := &habit.Goal{
		ID:      rec.String("id"),
		Name:    rec.String("name"),
		Target:  rec.Float("target"),
		Current: rec.Float("current"),
		Unit:    rec.String("unit"),
		Color:   rec.String("color"),
	}
	if g.ID == "" || g.Name == "" || g.Target <= 0 {
		return nil
	}
	return g
}

func encodeDay(owner string, rec history.DayRecord) remote.Record {
	completions := make(map[string]any, len(rec.Completions))
	for id, done := range rec.Completions {
		completions[id] = done
	}
	return remote.Record{
		"id":          string(rec.Date),
		"owner_id":    owner,
		"date":        string(rec.Date),
		"completions": completions,
	}
}

func decodeDay(rec remote.Record) (datekey.Key, map[string]bool, bool) {
	date, err := datekey.Parse(rec.String("date"))
	if err != nil {
		return "", nil, false
	}
	return date, rec.Bools("completions"), true
}
