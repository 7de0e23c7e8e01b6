package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/runner/muse"
)

func addInsight(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "fetch the AI status report",
		Example: `
habitx insight
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := muse.Muse{
				Requester: requester(cmd.Context()),
				Tracker:   t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
