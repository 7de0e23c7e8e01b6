package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/commands/options"
	"tableflip.dev/habitx/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"stats"},
		Short:   "show today's progress, the week grid, and goals",
		Example: `
habitx status
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := status.Status{
				ShowID:  io.ShowID,
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
