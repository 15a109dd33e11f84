package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bloom/internal/engine"
	"bloom/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your plant, habits and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, report, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := svc.State()
			if !st.OnboardingComplete {
				return engine.ErrNotOnboarded
			}
			printDecay(cmd.OutOrStdout(), report)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPlant, st.Name+"'s Garden"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("“"+svc.Motivation(ctx)+"”"))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			plant := st.Plant
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.StageIcon(plant.Stage), ui.LabelValue("Stage", string(plant.Stage)))
			fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.LabelValue("Health", ui.HealthStyle(plant.Health).Render(string(plant.Health))))
			if plant.Health == engine.HealthDead {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Bad.Render("   The plant withered away. Run `bloom revive` to replant."))
			} else {
				pct := engine.StageProgress(plant)
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.LabelValue("Experience",
					fmt.Sprintf("%d %s %.0f%% to next stage", plant.Experience, ui.ProgressBar(pct, 24), pct)))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.LabelValue("Friend code", ui.Gold.Render(st.FriendCode)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📅 Last 7 days"))
			fmt.Fprintln(cmd.OutOrStdout(), "   "+weeklyStrip(st, time.Now()))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🌿 Habits"))
			if len(st.Habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("   (none yet — `bloom habit add`)"))
			}
			today := svc.Today()
			for i := range st.Habits {
				fmt.Fprintln(cmd.OutOrStdout(), "   "+habitLine(&st.Habits[i], today))
			}

			if len(st.Parties) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconParty+" Parties"))
				for i := range st.Parties {
					p := &st.Parties[i]
					fmt.Fprintf(cmd.OutOrStdout(), "   %s %s %s\n",
						ui.Key.Render(p.Name), ui.Muted.Render("("+p.Code+")"),
						ui.Muted.Render(fmt.Sprintf("%d members", len(p.Members))))
				}
			}
			return nil
		},
	}

	return cmd
}

// weeklyStrip renders the last seven days as completion fractions,
// oldest first.
func weeklyStrip(st *engine.UserState, now time.Time) string {
	out := ""
	for i := 6; i >= 0; i-- {
		date := engine.DateKey(now.AddDate(0, 0, -i))
		completed := 0
		for j := range st.Habits {
			if st.Habits[j].CompletedOn(date) {
				completed++
			}
		}
		cell := fmt.Sprintf("%d/%d", completed, len(st.Habits))
		if len(st.Habits) > 0 && completed == len(st.Habits) {
			cell = ui.Good.Render(cell)
		} else if completed == 0 {
			cell = ui.Muted.Render(cell)
		}
		if out != "" {
			out += "  "
		}
		out += cell
	}
	return out
}

func habitLine(h *engine.Habit, today string) string {
	mark := "· "
	if h.CompletedOn(today) {
		mark = ui.Good.Render(ui.IconDone + " ")
	} else if h.Kind == engine.HabitNumeric && h.OverLimit(today) {
		mark = ui.Bad.Render(ui.IconWarn + " ")
	}

	detail := ""
	if h.Kind == engine.HabitNumeric {
		goal := fmt.Sprintf("%g", h.Target)
		if h.MaxTarget != nil {
			goal = fmt.Sprintf("%g–%g", h.Target, *h.MaxTarget)
		}
		detail = fmt.Sprintf(" %g/%s %s", h.Progress[today], goal, h.Unit)
	}

	streak := ""
	if h.Streak > 0 {
		streak = " " + ui.Muted.Render(fmt.Sprintf("%s%d", ui.IconStreak, h.Streak))
	}
	return mark + ui.Key.Render(h.Title) + detail + streak + " " + ui.Dim.Render(h.ID)
}
