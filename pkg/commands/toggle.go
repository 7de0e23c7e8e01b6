package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/commands/options"
	"tableflip.dev/habitx/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "toggle",
		Aliases: []string{"log", "done"},
		Short:   "toggle a habit completion",
		Example: `
habitx toggle "Hydration"
habitx toggle "Hydration" --date="2026-02-28"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name, id, or position")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := do.GetDate()
			if err != nil {
				return err
			}
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := toggle.Toggle{
				Ref:     strings.Join(args, " "),
				Date:    date,
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
