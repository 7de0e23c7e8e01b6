package options

import (
	"github.com/spf13/cobra"
)

// HabitOptions
type HabitOptions struct {
	Name  string
	Icon  string
	Color string
}

func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		Wrap80("Icon tag for the habit, example: --icon=Zap."))
	cmd.Flags().StringVar(&o.Color, "color", "",
		Wrap80(`Hex color for the habit, example: --color="#58a6ff".`))
}

func AddHabitEditArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Rename the habit.")
	AddHabitArgs(cmd, o)
}
