package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"bloom/internal/ui"
)

func newFoodCmd() *cobra.Command {
	var estimate bool
	var imagePath string

	cmd := &cobra.Command{
		Use:   "food <name> [calories]",
		Short: "Log a food item (feeds the calorie habit if you track one)",
		Long: `Log a food item. The entry is always recorded; when a calorie habit
exists (unit "kcal" or "calorie" in the title), the calories are added
to it and the plant is rewarded exactly as direct tracking would.

With --estimate the calorie figure is estimated from the name; with
--image <path> the name and calories both come from analyzing a photo.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("image") {
				if len(args) != 0 {
					return errors.New("--image takes no positional arguments")
				}
				return nil
			}
			if len(args) < 1 {
				return errors.New("name is required")
			}
			if cmd.Flags().Changed("estimate") {
				if len(args) != 1 {
					return errors.New("pass either calories or --estimate, not both")
				}
				return nil
			}
			if len(args) != 2 {
				return errors.New("calories is required (or use --estimate)")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
				return errors.New("calories must be a number")
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

			var name string
			var calories float64
			switch {
			case cmd.Flags().Changed("image"):
				img, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				est, err := svc.AnalyzeFoodImage(ctx, img)
				if err != nil {
					return fmt.Errorf("could not analyze image: %w", err)
				}
				name = est.Name
				calories = float64(est.Calories)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Looks like %s (~%d kcal)", est.Name, est.Calories)))
			case estimate:
				name = args[0]
				n, err := svc.EstimateMetric(ctx, name, "kcal")
				if err != nil {
					return fmt.Errorf("could not estimate calories for %q: %w", name, err)
				}
				calories = float64(n)
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Estimated %q as %g kcal", name, calories)))
			default:
				name = args[0]
				calories, _ = strconv.ParseFloat(args[1], 64)
			}

			out, err := svc.LogFood(ctx, name, calories)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Logged %s %s\n",
				ui.IconFood, ui.Key.Render(out.Food.Log.Name),
				ui.Muted.Render(fmt.Sprintf("(%g kcal)", out.Food.Log.Calories)))

			if out.Habit == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No calorie habit found; logged only."))
				return nil
			}

			today := svc.Today()
			goal := fmt.Sprintf("%g", out.Habit.Target)
			if out.Habit.MaxTarget != nil {
				goal = fmt.Sprintf("%g–%g", out.Habit.Target, *out.Habit.MaxTarget)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Today",
				fmt.Sprintf("%g/%s kcal on %s", out.Habit.Progress[today], goal, out.Habit.Title)))

			switch {
			case out.Food.Ledger.WasJustCompleted:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Calorie target met!"))
			case out.OverLimit:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render(ui.IconWarn+" Over your calorie cap for today."))
			}
			printPlantLine(cmd.OutOrStdout(), out.Plant)
			return nil
		},
	}

	cmd.Flags().BoolVar(&estimate, "estimate", false, "Estimate calories from the food name")
	cmd.Flags().StringVar(&imagePath, "image", "", "Analyze a food photo instead of typing name/calories")

	return cmd
}
