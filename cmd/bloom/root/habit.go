package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bloom/internal/engine"
	"bloom/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(newHabitAddCmd(), newHabitRmCmd())
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var numeric bool
	var target float64
	var maxTarget float64
	var unit string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit (boolean by default, --numeric for measured ones)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, report, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd.OutOrStdout(), report)

			in := engine.AddHabitInput{
				Title:  args[0],
				Kind:   engine.HabitBoolean,
				Target: 1,
			}
			if numeric {
				in.Kind = engine.HabitNumeric
				in.Target = target
				in.Unit = unit
				if cmd.Flags().Changed("max") {
					in.MaxTarget = &maxTarget
				}
			}

			h, err := svc.AddHabit(ctx, in)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s Added %s %s", ui.IconSeed, ui.Key.Render(h.Title), ui.Muted.Render("("+h.ID+")"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(line))
			if h.Kind == engine.HabitNumeric {
				goal := fmt.Sprintf("%g %s", h.Target, h.Unit)
				if h.MaxTarget != nil {
					goal = fmt.Sprintf("%g–%g %s", h.Target, *h.MaxTarget, h.Unit)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Daily goal", goal))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&numeric, "numeric", false, "Track a number per day instead of a checkbox")
	cmd.Flags().Float64VarP(&target, "target", "t", 1, "Daily target (numeric habits)")
	cmd.Flags().Float64Var(&maxTarget, "max", 0, "Optional daily cap; exceeding it un-completes the day")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "Unit label, e.g. kcal, cups, min")

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, report, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd.OutOrStdout(), report)

			if err := svc.RemoveHabit(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Removed habit "+args[0]))
			return nil
		},
	}

	return cmd
}
