package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions
type WindowOptions struct {
	Days  int
	Month bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVar(&o.Days, "window", 0,
		Wrap80("Number of trailing days to include. Defaults to 98."))
	cmd.Flags().BoolVar(&o.Month, "month", false,
		"Show the current calendar month instead.")
}
