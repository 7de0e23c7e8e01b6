package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/remote"
	"tableflip.dev/habitx/pkg/session"
	"tableflip.dev/habitx/pkg/tracker"
)

func newTestModel(t *testing.T) (Model, *tracker.Controller) {
	t.Helper()
	store, err := remote.NewDiskv(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewDiskv() = %v", err)
	}
	c := tracker.New(store, &session.Static{Owner: "local"}, nil)
	t.Cleanup(c.Close)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start() = %v", err)
	}
	return New(context.Background(), c, nil), c
}

func press(t *testing.T, m Model, key rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyPressMsg{Text: string(key), Code: key})
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestNavigationMovesCursor(t *testing.T) {
	m, _ := newTestModel(t)

	if m.habitIdx != 0 {
		t.Fatalf("habitIdx = %d at start", m.habitIdx)
	}
	m = press(t, m, 'j')
	if m.habitIdx != 1 {
		t.Fatalf("habitIdx = %d after j", m.habitIdx)
	}
	m = press(t, m, 'j')
	if m.habitIdx != 1 {
		t.Fatalf("habitIdx = %d, should stop at last habit", m.habitIdx)
	}
	m = press(t, m, 'k')
	if m.habitIdx != 0 {
		t.Fatalf("habitIdx = %d after k", m.habitIdx)
	}

	m = press(t, m, '\t')
	if m.focus != paneGoals {
		t.Fatalf("focus = %v after tab", m.focus)
	}
}

func TestToggleLogsSelectedHabit(t *testing.T) {
	m, c := newTestModel(t)
	habits := c.Habits()

	m = press(t, m, 'x')
	day := c.Day(datekey.For(m.now))
	if !day.Completions[habits[0].ID] {
		t.Fatal("toggle did not set today's flag")
	}
	if !strings.Contains(m.status, habits[0].Name) {
		t.Errorf("status = %q, want logged habit name", m.status)
	}
}

func TestInsertModeAddsHabit(t *testing.T) {
	m, c := newTestModel(t)

	m = press(t, m, 'o')
	if m.mode != modeInsert {
		t.Fatalf("mode = %v after o", m.mode)
	}

	m.input.SetValue("Stretch")
	next, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(Model)
	if m.mode != modeNormal {
		t.Fatalf("mode = %v after enter", m.mode)
	}

	found := false
	for _, h := range c.Habits() {
		if h.Name == "Stretch" {
			found = true
		}
	}
	if !found {
		t.Fatal("habit not added from insert mode")
	}
}

func TestViewRendersPanes(t *testing.T) {
	m, c := newTestModel(t)

	view := m.View()
	for _, h := range c.Habits() {
		if !strings.Contains(view, h.Name) {
			t.Errorf("view missing habit %q", h.Name)
		}
	}
	if !strings.Contains(view, "protocols") || !strings.Contains(view, "directives") {
		t.Error("view missing pane titles")
	}
	if !strings.Contains(view, "HABITX") {
		t.Error("view missing header")
	}
}

func TestHeatmapHasSevenRows(t *testing.T) {
	m, _ := newTestModel(t)

	rows := strings.Split(m.viewHeatmap(), "\n")
	if len(rows) != 7 {
		t.Fatalf("heatmap rows = %d, want 7", len(rows))
	}
}
