package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/datekey"
)

// DateOptions
type DateOptions struct {
	DateString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		Wrap80(`Specify the date, example: --date="2026-02-28". Defaults to today.`))
}

func (o *DateOptions) GetDate() (datekey.Key, error) {
	if o.DateString == "" {
		return datekey.Today(), nil
	}
	return datekey.Parse(o.DateString)
}
