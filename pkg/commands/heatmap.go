package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/commands/options"
	"tableflip.dev/habitx/pkg/runner/heat"
)

func addHeatmap(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "show the trailing activity heatmap",
		Example: `
habitx heatmap
habitx heatmap --window=30
habitx heatmap --month
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := heat.Heat{
				WindowDays: wo.Days,
				Month:      wo.Month,
				Tracker:    t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
