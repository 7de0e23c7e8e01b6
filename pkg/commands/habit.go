package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitx/pkg/commands/options"
	"tableflip.dev/habitx/pkg/runner/habits"
	"tableflip.dev/habitx/pkg/runner/icons"
)

func addHabit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "manage habit definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addHabitAdd(cmd)
	addHabitList(cmd)
	addHabitEdit(cmd)
	addHabitRm(cmd)
	addHabitIcons(cmd)

	topLevel.AddCommand(cmd)
}

func addHabitAdd(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a habit",
		Example: `
habitx habit add "Hydration" --icon=Zap --color="#58a6ff"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			ho.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := habits.Add{
				Name:    ho.Name,
				Icon:    ho.Icon,
				Color:   ho.Color,
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func addHabitList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list habits",
		Example: `
habitx habit list
habitx habit list --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := habits.List{
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

func addHabitEdit(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "edit a habit",
		Example: `
habitx habit edit "Hydration" --name="Hydrate" --icon=Wind
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name, id, or position")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := habits.Edit{
				Ref:     strings.Join(args, " "),
				Name:    ho.Name,
				Icon:    ho.Icon,
				Color:   ho.Color,
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddHabitEditArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func addHabitIcons(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "list the preset habit icons",
		Example: `
habitx habit icons
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := icons.Icons{}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addHabitRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"remove", "delete"},
		Short:   "remove a habit",
		Example: `
habitx habit rm "Hydration"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit name, id, or position")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer t.Close()
			s := habits.Remove{
				Ref:     strings.Join(args, " "),
				Tracker: t,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
