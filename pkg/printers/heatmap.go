package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habitx/pkg/stats"
)

// density maps a bucket to a cell color, dimmest to brightest.
var density = []*color.Color{
	color.New(color.Faint),
	color.New(color.FgGreen, color.Faint),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.FgHiGreen, color.Bold),
}

// Heatmap prints the activity grid, one column per week and one row per
// weekday, oldest week on the left. The points come oldest first and the
// last one is today.
func (pp *PrettyPrint) Heatmap(points []stats.HeatmapPoint) {
	if len(points) == 0 {
		pp.none()
		return
	}

	// Lead the first column so rows line up on weekdays.
	lead := int(points[0].Date.Time().Weekday())
	weeks := (lead + len(points) + 6) / 7

	grid := make([][]*stats.HeatmapPoint, 7)
	for i := range grid {
		grid[i] = make([]*stats.HeatmapPoint, weeks)
	}
	for i := range points {
		slot := lead + i
		grid[slot%7][slot/7] = &points[i]
	}

	label := color.New(color.Faint, color.Italic)
	for day := 0; day < 7; day++ {
		switch time.Weekday(day) {
		case time.Monday, time.Wednesday, time.Friday:
			_, _ = label.Printf("%3s ", time.Weekday(day).String()[:3])
		default:
			fmt.Print(strings.Repeat(" ", 4))
		}
		for week := 0; week < weeks; week++ {
			p := grid[day][week]
			if p == nil {
				fmt.Print("  ")
				continue
			}
			_, _ = density[stats.DensityBucket(p.Count)].Print("■ ")
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// Month prints one calendar month, bolding days with recorded activity.
func (pp *PrettyPrint) Month(then time.Time, points []stats.HeatmapPoint) {
	const width = len("11 12 13 14 15 16 17")

	active := make(map[int]bool, len(points))
	for _, p := range points {
		t := p.Date.Time()
		if t.Month() == then.Month() && t.Year() == then.Year() && p.Count > 0 {
			active[t.Day()] = true
		}
	}

	tf := color.New(color.FgWhite, color.Italic)
	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	d := startDay(then)
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := daysIn(then)
	for i := 0; i < days; i++ {
		if active[i+1] {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func daysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
