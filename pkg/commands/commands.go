package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/habitx/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "habitx",
		Short: base.Wrap80("Habit tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addHabit(topLevel)
	addGoal(topLevel)
	addToggle(topLevel)
	addStatus(topLevel)
	addHeatmap(topLevel)
	addInsight(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addDoctor(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
