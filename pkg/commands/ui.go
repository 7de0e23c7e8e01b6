package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive dashboard",
		Example: `
habitx ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			i := ui.UI{
				Requester: requester(cmd.Context()),
				Tracker:   t,
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
