// Package icons prints the preset icon legend a habit can be tagged with.
package icons

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habitx/pkg/glyph"
)

type Icons struct{}

func (i *Icons) Do(ctx context.Context) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Tag"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, g := range glyph.DefaultIcons() {
		tbl.AddRow(g.Tag, g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nIcons")))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
