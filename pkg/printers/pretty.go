package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habitx/pkg/config"
	"tableflip.dev/habitx/pkg/habit"
	"tableflip.dev/habitx/pkg/history"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// Habits prints each habit with its glyph, id optional.
func (pp *PrettyPrint) Habits(habits ...*habit.Habit) {
	if len(habits) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, h := range habits {
		if pp.ShowID {
			_, _ = y.Print(h.ID)
			if pad := len(spacing) - len(h.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		g := h.Glyph()
		_, _ = t.Printf("%s  %s\n", g.Symbol, h.Name)
	}
	_, _ = t.Println("")
}

// WeekGrid prints the trailing week as a habit-per-row grid, one column per
// day, a check for done and a dot for not done. The days come oldest first
// and the last column is today.
func (pp *PrettyPrint) WeekGrid(habits []*habit.Habit, week []history.DayRecord) {
	if len(habits) == 0 {
		pp.none()
		return
	}

	done := color.New(color.FgHiGreen)
	idle := color.New(color.Faint)

	table := uitable.New()
	table.Separator = "  "

	header := make([]interface{}, 0, len(week)+1)
	header = append(header, "")
	for _, day := range week {
		header = append(header, day.Date.Time().Format("Mon"))
	}
	table.AddRow(header...)

	for _, h := range habits {
		row := make([]interface{}, 0, len(week)+1)
		row = append(row, h.Name)
		for _, day := range week {
			if day.Completions[h.ID] {
				row = append(row, done.Sprint("✓"))
			} else {
				row = append(row, idle.Sprint("·"))
			}
		}
		table.AddRow(row...)
	}

	fmt.Println(table)
	fmt.Println("")
}

// Goals prints each goal as a progress bar with percent and unit.
func (pp *PrettyPrint) Goals(goals ...*habit.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	name := color.New(color.Bold)
	fill := color.New(color.FgHiCyan)
	rest := color.New(color.Faint)
	unit := color.New(color.Faint, color.Italic)

	const barWidth = 20
	for _, g := range goals {
		if pp.ShowID {
			_, _ = y.Print(g.ID)
			if pad := len(spacing) - len(g.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		pct := g.Percent()
		filled := pct * barWidth / 100
		if filled > barWidth {
			filled = barWidth
		}
		_, _ = name.Printf("%-20s ", g.Name)
		_, _ = fill.Print(strings.Repeat("█", filled))
		_, _ = rest.Print(strings.Repeat("░", barWidth-filled))
		_, _ = unit.Printf("  %3d%%  %g/%g %s\n", pct, g.Current, g.Target, g.Unit)
	}
	fmt.Println("")
}

// Progress prints the day's completion percentage.
func (pp *PrettyPrint) Progress(pct int) {
	label := color.New(color.Faint)
	value := color.New(color.Bold, color.FgHiGreen)
	if pct < 50 {
		value = color.New(color.Bold, color.FgHiYellow)
	}
	_, _ = label.Print("daily protocols  ")
	_, _ = value.Printf("%d%%\n\n", pct)
}

// Insight prints the summarizer's one-liner.
func (pp *PrettyPrint) Insight(text string) {
	i := color.New(color.FgHiMagenta, color.Italic)
	_, _ = i.Printf("» %s\n\n", text)
}

// Diagnostics prints config health rows as a name/status table.
func (pp *PrettyPrint) Diagnostics(rows []config.Diagnostic) {
	ok := color.New(color.FgHiGreen)
	bad := color.New(color.FgHiRed)

	table := uitable.New()
	table.Separator = "  "
	for _, row := range rows {
		status := bad.Sprint(row.Status)
		if row.OK {
			status = ok.Sprint(row.Status)
		}
		table.AddRow(row.Name, status)
	}
	fmt.Println(table)
	fmt.Println("")
}
