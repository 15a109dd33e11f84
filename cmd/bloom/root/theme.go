package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"bloom/internal/engine"
	"bloom/internal/ui"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", svc.State().Theme))
				return nil
			}
			theme := engine.Theme(args[0])
			if !theme.IsValid() {
				return fmt.Errorf("unknown theme %q (want light or dark)", args[0])
			}
			if err := svc.SetTheme(ctx, theme); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", theme))
			return nil
		},
	}
}
