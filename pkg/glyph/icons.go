package glyph

import "fmt"

// Glyph is a symbolic icon tag a habit can carry. The Tag is the stable value
// stored with the habit definition; the Symbol is what terminals render.
type Glyph struct {
	Tag     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultIcons returns the preset icon tags offered when defining a habit.
func DefaultIcons() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Tag:     "Activity",
		Symbol:  "♥",
		Meaning: "physical activity",
	}, Glyph{
		Tag:     "Book",
		Symbol:  "▤",
		Meaning: "reading",
	}, Glyph{
		Tag:     "Wind",
		Symbol:  "≋",
		Meaning: "breathing, meditation",
	}, Glyph{
		Tag:     "Zap",
		Symbol:  "⚡",
		Meaning: "energy",
	}, Glyph{
		Tag:     "Flame",
		Symbol:  "✦",
		Meaning: "intensity",
	}, Glyph{
		Tag:     "Footprints",
		Symbol:  "⋯",
		Meaning: "walking",
	}, Glyph{
		Tag:     "Calendar",
		Symbol:  "▦",
		Meaning: "routine",
	})

	return g
}

// ForTag resolves an icon tag to its glyph. Unknown tags fall back to the
// first preset so a habit row always renders something.
func ForTag(tag string) Glyph {
	for _, g := range DefaultIcons() {
		if g.Tag == tag {
			return g
		}
	}
	return DefaultIcons()[0]
}

func (g Glyph) String() string {
	return g.Symbol
}

// PresetColors is the palette offered for habits and goals.
var PresetColors = []string{
	"#58a6ff", // blue
	"#bc8cff", // purple
	"#7ee787", // green
	"#ffa657", // orange
	"#ff7b72", // red
	"#3fb950", // dark green
	"#f85149", // bright red
	"#d29922", // gold
	"#1f6feb", // royal blue
}
