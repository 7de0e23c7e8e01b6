package options

import (
	"github.com/spf13/cobra"
)

// GoalOptions
type GoalOptions struct {
	Name   string
	Target float64
	Unit   string
	Color  string
}

func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().Float64Var(&o.Target, "target", 0,
		Wrap80("Target value for the goal, example: --target=12."))
	cmd.Flags().StringVar(&o.Unit, "unit", "",
		Wrap80("Unit label for the goal, example: --unit=books."))
	cmd.Flags().StringVar(&o.Color, "color", "",
		Wrap80(`Hex color for the goal, example: --color="#bc8cff".`))
}
