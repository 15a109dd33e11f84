package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bloom/internal/ui"
)

func newSocialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "social",
		Short: "Friends and parties",
	}
	cmd.AddCommand(newSocialCodeCmd(), newFriendCmd(), newPartyCmd())
	return cmd
}

func newSocialCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code",
		Short: "Show your friend code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Friend code", ui.Gold.Render(svc.State().FriendCode)))
			return nil
		},
	}
}

func newFriendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friend",
		Short: "Manage friends",
	}

	add := &cobra.Command{
		Use:   "add <code>",
		Short: "Add a friend by code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("friend code is required")
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

			p, err := svc.AddFriend(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s joined your garden %s\n",
				ui.Good.Render(ui.IconFriends+" Added"), ui.Key.Render(p.Name),
				ui.Muted.Render(fmt.Sprintf("(%s, %s %s)", p.FriendCode, ui.StageIcon(p.Plant.Stage), p.Plant.Stage)))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List friends",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			friends := svc.State().Friends
			if len(friends) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no friends yet)"))
				return nil
			}
			for i := range friends {
				f := &friends[i]
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n",
					ui.Key.Render(f.Name), ui.Muted.Render("("+f.FriendCode+")"),
					ui.StageIcon(f.Plant.Stage),
					ui.HealthStyle(f.Plant.Health).Render(string(f.Plant.Health)))
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newPartyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Manage parties",
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a party",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("party name is required")
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

			p, err := svc.CreateParty(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconParty+" Created"), ui.Key.Render(p.Name),
				ui.Muted.Render("— share code "+p.Code))
			return nil
		},
	}

	join := &cobra.Command{
		Use:   "join <code>",
		Short: "Join a party by code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("party code is required")
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

			p, err := svc.JoinParty(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconParty+" Joined"), ui.Key.Render(p.Name),
				ui.Muted.Render(fmt.Sprintf("(%d members)", len(p.Members))))
			return nil
		},
	}

	cmd.AddCommand(create, join)
	return cmd
}
