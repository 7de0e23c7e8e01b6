package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/commands/options"
	"tableflip.dev/habitx/pkg/runner/goals"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "manage long-term goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalAdd(cmd)
	addGoalList(cmd)
	addGoalRm(cmd)
	addGoalProgress(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalAdd(topLevel *cobra.Command) {
	g := &options.GoalOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a goal",
		Example: `
habitx goal add "Read 12 books" --target=12 --unit=books
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal name")
			}
			g.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := goals.Add{
				Name:    g.Name,
				Target:  g.Target,
				Unit:    g.Unit,
				Color:   g.Color,
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGoalArgs(cmd, g)

	topLevel.AddCommand(cmd)
}

func addGoalList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list goals",
		Example: `
habitx goal list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := goals.List{
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

func addGoalRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "remove a goal",
		Example: `
habitx goal rm "Read 12 books"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal name, id, or position")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := goals.Remove{
				Ref:     strings.Join(args, " "),
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addGoalProgress(topLevel *cobra.Command) {
	var delta float64

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "adjust a goal's progress by a delta",
		Example: `
habitx goal progress "Read 12 books" 1
habitx goal progress "Read 12 books" -- -0.5
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a goal and a delta")
			}
			var err error
			delta, err = strconv.ParseFloat(args[len(args)-1], 64)
			if err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := goals.Progress{
				Ref:     strings.Join(args[:len(args)-1], " "),
				Delta:   delta,
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
