package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/config"
	"tableflip.dev/habitx/pkg/runner/doctor"
)

func addDoctor(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "check the configuration",
		Example: `
habitx doctor
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s := doctor.Doctor{Config: cfg}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
