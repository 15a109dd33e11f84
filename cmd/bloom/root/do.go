package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bloom/internal/engine"
	"bloom/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a boolean habit for today",
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

			out, err := svc.ToggleHabit(ctx, args[0])
			if err != nil {
				return err
			}

			if out.Result.WasJustCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Good.Render(ui.IconDone+" Done"),
					ui.Key.Render(out.Habit.Title),
					ui.Muted.Render(fmt.Sprintf("(streak %d, +%d XP)", out.Habit.Streak, engine.CompletionXP)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Warn.Render("↩ Undone"),
					ui.Key.Render(out.Habit.Title),
					ui.Muted.Render(fmt.Sprintf("(streak %d, -%d XP)", out.Habit.Streak, engine.CompletionXP)))
			}
			printPlantLine(cmd.OutOrStdout(), out.Plant)

			if out.AllComplete && out.Result.WasJustCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconBloom+" All habits done today!"))
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("“"+svc.Motivation(ctx)+"”"))
			}
			return nil
		},
	}

	return cmd
}

func printPlantLine(out io.Writer, plant engine.PlantState) {
	fmt.Fprintf(out, "%s %s %s %s\n",
		ui.StageIcon(plant.Stage),
		ui.Key.Render(string(plant.Stage)),
		ui.HealthStyle(plant.Health).Render(string(plant.Health)),
		ui.Muted.Render(fmt.Sprintf("xp %d %s %.0f%%", plant.Experience, ui.ProgressBar(engine.StageProgress(plant), 20), engine.StageProgress(plant))))
}
