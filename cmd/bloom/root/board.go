package root

import (
	"context"

	"github.com/spf13/cobra"

	"bloom/internal/engine"
	"bloom/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive garden board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, report, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd.OutOrStdout(), report)

			if err := svc.SetActiveTab(ctx, engine.TabHome); err != nil {
				return err
			}
			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
