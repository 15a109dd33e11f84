package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bloom/internal/engine"
	"bloom/internal/ui"
)

func newReviveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revive",
		Short: "Revive a dead plant",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, report, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd.OutOrStdout(), report)

			if svc.State().Plant.Health != engine.HealthDead {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Your plant is still alive. Nothing to revive."))
				return nil
			}
			if err := svc.Revive(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s A fresh seed takes root. Start over, one habit at a time.\n",
				ui.Good.Render(ui.IconRevive+" Revived"))
			return nil
		},
	}
}
