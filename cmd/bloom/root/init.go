package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bloom/internal/ui"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Plant your first seed",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Onboard(ctx, args[0]); err != nil {
				return err
			}
			st := svc.State()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSeed, "Welcome to Bloom, "+st.Name+"!"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Friend code", ui.Gold.Render(st.FriendCode)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("A seed is planted. Add habits with `bloom habit add` and grow it."))
			return nil
		},
	}

	return cmd
}
