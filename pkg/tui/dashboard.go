// Package tui renders the interactive dashboard: the week grid, the
// activity heatmap, the goal bars, and the insight banner.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/habitx/pkg/datekey"
	"tableflip.dev/habitx/pkg/glyph"
	"tableflip.dev/habitx/pkg/insight"
	"tableflip.dev/habitx/pkg/stats"
	"tableflip.dev/habitx/pkg/tracker"
)

type pane int

const (
	paneHabits pane = iota
	paneGoals
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
)

// Model contains dashboard state.
type Model struct {
	ctx       context.Context
	tracker   *tracker.Controller
	requester *insight.Requester

	focus    pane
	mode     mode
	habitIdx int
	goalIdx  int

	input textinput.Model
	spin  spinner.Model

	now            time.Time
	insightTxt     string
	insightPending bool
	status         string

	termWidth  int
	termHeight int
}

// New creates a dashboard model backed by the tracker.
func New(ctx context.Context, t *tracker.Controller, r *insight.Requester) Model {
	ti := textinput.New()
	ti.Placeholder = "protocol name"
	ti.CharLimit = 64
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Points

	return Model{
		ctx:            ctx,
		tracker:        t,
		requester:      r,
		input:          ti,
		spin:           sp,
		now:            time.Now(),
		insightTxt:     insight.Initializing,
		insightPending: true,
		status:         "j/k move, tab switch pane, space toggle, +/- adjust, o add, i insight, r reload, q quit",
	}
}

// messages
type tickMsg time.Time
type insightMsg string
type reloadedMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) fetchInsight() tea.Cmd {
	snap := m.tracker.InsightSnapshot()
	return func() tea.Msg {
		if m.requester == nil {
			return insightMsg(insight.Fallback)
		}
		return insightMsg(m.requester.Fetch(m.ctx, snap))
	}
}

func (m *Model) reload() tea.Cmd {
	return func() tea.Msg {
		m.tracker.Reload(m.ctx)
		return reloadedMsg{}
	}
}

// Init starts the clock, the spinner, and the first insight fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.spin.Tick, m.fetchInsight())
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case spinner.TickMsg:
		if m.insightPending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
	case insightMsg:
		m.insightTxt = string(msg)
		m.insightPending = false
	case reloadedMsg:
		m.status = "Reloaded"
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeInsert {
		return m.handleInsertKey(msg)
	}

	habits := m.tracker.Habits()
	goals := m.tracker.Goals()

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "tab", "h", "l", "left", "right":
		if m.focus == paneHabits {
			m.focus = paneGoals
		} else {
			m.focus = paneHabits
		}
	case "j", "down":
		if m.focus == paneHabits && m.habitIdx < len(habits)-1 {
			m.habitIdx++
		}
		if m.focus == paneGoals && m.goalIdx < len(goals)-1 {
			m.goalIdx++
		}
	case "k", "up":
		if m.focus == paneHabits && m.habitIdx > 0 {
			m.habitIdx--
		}
		if m.focus == paneGoals && m.goalIdx > 0 {
			m.goalIdx--
		}
	case " ", "enter", "x":
		if m.focus == paneHabits && m.habitIdx < len(habits) {
			h := habits[m.habitIdx]
			if _, ok := m.tracker.ToggleCompletion(datekey.For(m.now), h.ID); ok {
				m.status = "Logged " + h.Name
			}
		}
	case "+", "=":
		if m.focus == paneGoals && m.goalIdx < len(goals) {
			m.adjustGoal(goals[m.goalIdx].ID, 1)
		}
	case "-":
		if m.focus == paneGoals && m.goalIdx < len(goals) {
			m.adjustGoal(goals[m.goalIdx].ID, -1)
		}
	case "o":
		m.mode = modeInsert
		m.input.Reset()
		cmd := m.input.Focus()
		return m, tea.Batch(cmd, textinput.Blink)
	case "i":
		m.insightTxt = insight.Initializing
		m.insightPending = true
		return m, tea.Batch(m.spin.Tick, m.fetchInsight())
	case "r":
		m.status = "Reloading"
		return m, m.reload()
	}
	return m, nil
}

func (m Model) handleInsertKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name != "" {
			icons := glyph.DefaultIcons()
			icon := icons[len(m.tracker.Habits())%len(icons)]
			hue := glyph.PresetColors[len(m.tracker.Habits())%len(glyph.PresetColors)]
			if id := m.tracker.CreateHabit(name, icon.Tag, hue); id != "" {
				m.status = "Added " + name
			}
		}
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.status = "Add cancelled"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) adjustGoal(id string, delta float64) {
	if current, ok := m.tracker.AdjustGoalProgress(id, delta); ok {
		m.status = fmt.Sprintf("Directive at %g", current)
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("48"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("218"))
	insightStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("213"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// View renders the dashboard.
func (m Model) View() string {
	today := datekey.For(m.now)

	header := titleStyle.Render("HABITX") + "  " +
		faintStyle.Render(m.now.Format("2006-01-02 15:04:05")) + "  " +
		fmt.Sprintf("%d%%", m.tracker.Progress(today))

	left := panelStyle.Render(m.viewHabits(today))
	right := panelStyle.Render(m.viewGoals())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	heat := panelStyle.Render(m.viewHeatmap())

	banner := insightStyle.Render("» " + m.insightTxt)
	if m.insightPending {
		banner = insightStyle.Render("» "+insight.Initializing+" ") + m.spin.View()
	}
	status := faintStyle.Render(m.status)

	lines := []string{header, body, heat, banner, status}
	if m.mode == modeInsert {
		lines = append(lines, "Add: "+m.input.View())
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHabits(today datekey.Key) string {
	habits := m.tracker.Habits()
	week := m.tracker.Window(stats.GridWindowDays)

	var b strings.Builder
	b.WriteString(m.paneTitle(paneHabits, "protocols"))
	b.WriteString("\n")

	for i, h := range habits {
		cursor := "  "
		if m.focus == paneHabits && i == m.habitIdx {
			cursor = cursorStyle.Render("» ")
		}
		b.WriteString(cursor)
		b.WriteString(fmt.Sprintf("%-18s ", h.Name))
		for _, day := range week {
			if day.Completions[h.ID] {
				b.WriteString(doneStyle.Render("✓ "))
			} else {
				b.WriteString(faintStyle.Render("· "))
			}
		}
		b.WriteString("\n")
	}
	if len(habits) == 0 {
		b.WriteString(faintStyle.Render("  none"))
	}
	return b.String()
}

func (m Model) viewGoals() string {
	goals := m.tracker.Goals()

	var b strings.Builder
	b.WriteString(m.paneTitle(paneGoals, "directives"))
	b.WriteString("\n")

	const barWidth = 16
	for i, g := range goals {
		cursor := "  "
		if m.focus == paneGoals && i == m.goalIdx {
			cursor = cursorStyle.Render("» ")
		}
		pct := g.Percent()
		filled := pct * barWidth / 100
		if filled > barWidth {
			filled = barWidth
		}
		bar := goalStyle(g.Color).Render(strings.Repeat("█", filled)) +
			faintStyle.Render(strings.Repeat("░", barWidth-filled))
		b.WriteString(fmt.Sprintf("%s%-14s %s %3d%%\n", cursor, g.Name, bar, pct))
	}
	if len(goals) == 0 {
		b.WriteString(faintStyle.Render("  none"))
	}
	return b.String()
}

func goalStyle(hex string) lipgloss.Style {
	if _, err := colorful.Hex(hex); err != nil {
		return doneStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// heatRamp blends from the dim cell color to the hot one; index by bucket.
var heatRamp = func() []lipgloss.Style {
	dim, _ := colorful.Hex("#0e4429")
	hot, _ := colorful.Hex("#39d353")
	styles := make([]lipgloss.Style, 5)
	styles[0] = faintStyle
	for i := 1; i < 5; i++ {
		c := dim.BlendLuv(hot, float64(i-1)/3.0)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return styles
}()

func (m Model) viewHeatmap() string {
	points := m.tracker.Heatmap(stats.HeatmapWindowDays)
	if len(points) == 0 {
		return faintStyle.Render("no activity")
	}

	lead := int(points[0].Date.Time().Weekday())
	weeks := (lead + len(points) + 6) / 7

	rows := make([][]string, 7)
	for day := 0; day < 7; day++ {
		rows[day] = make([]string, weeks)
		for week := range rows[day] {
			rows[day][week] = "  "
		}
	}
	for i, p := range points {
		slot := lead + i
		cell := heatRamp[stats.DensityBucket(p.Count)].Render("■ ")
		rows[slot%7][slot/7] = cell
	}

	var b strings.Builder
	for day := 0; day < 7; day++ {
		b.WriteString(strings.Join(rows[day], ""))
		if day < 6 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) paneTitle(p pane, name string) string {
	if m.focus == p {
		return titleStyle.Render("» " + name)
	}
	return faintStyle.Render("  " + name)
}

// Run launches the dashboard and blocks until it exits.
func Run(ctx context.Context, t *tracker.Controller, r *insight.Requester) error {
	p := tea.NewProgram(New(ctx, t, r), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
