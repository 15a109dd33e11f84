package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bloom/internal/ui"
)

func newTrackCmd() *cobra.Command {
	var estimate string

	cmd := &cobra.Command{
		Use:   "track <id> [delta]",
		Short: "Add progress to a numeric habit for today",
		Long: `Add progress to a numeric habit for today.

The delta may be fractional or negative. With --estimate, the value is
produced by the estimation service from a free-text description
instead of a literal number, e.g.:

  bloom track <id> --estimate "20 mins of running"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("id is required")
			}
			if cmd.Flags().Changed("estimate") {
				if len(args) != 1 {
					return errors.New("pass either a delta or --estimate, not both")
				}
				return nil
			}
			if len(args) != 2 {
				return errors.New("delta is required (or use --estimate)")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("delta must be a number")
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

			id := args[0]
			var delta float64
			if cmd.Flags().Changed("estimate") {
				h := svc.State().HabitByID(id)
				unit := ""
				if h != nil {
					unit = h.Unit
				}
				// The estimate is produced against a snapshot and then applied
				// through a fresh synchronous mutation below.
				n, err := svc.EstimateMetric(ctx, estimate, unit)
				if err != nil {
					return fmt.Errorf("could not estimate %q: %w", estimate, err)
				}
				delta = float64(n)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Estimated %q as %g %s", estimate, delta, unit)))
			} else {
				delta, _ = strconv.ParseFloat(args[1], 64)
			}

			out, err := svc.TrackHabit(ctx, id, delta)
			if err != nil {
				return err
			}

			today := svc.Today()
			progress := fmt.Sprintf("%g", out.Habit.Progress[today])
			goal := fmt.Sprintf("%g", out.Habit.Target)
			if out.Habit.MaxTarget != nil {
				goal = fmt.Sprintf("%g–%g", out.Habit.Target, *out.Habit.MaxTarget)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Key.Render(out.Habit.Title),
				progress+"/"+goal+" "+out.Habit.Unit,
				ui.Muted.Render(fmt.Sprintf("(streak %d)", out.Habit.Streak)))

			switch {
			case out.Result.WasJustCompleted:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Target met!"))
			case out.Result.WasJustUncompleted:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconWarn+" Over the limit — the day no longer counts."))
			}
			printPlantLine(cmd.OutOrStdout(), out.Plant)

			if out.AllComplete && out.Result.WasJustCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconBloom+" All habits done today!"))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("“"+svc.Motivation(ctx)+"”"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&estimate, "estimate", "", "Describe the activity and let the assistant estimate the value")

	return cmd
}
