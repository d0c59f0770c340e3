package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mquinn/rpsduel-go/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player session commands",
	}

	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerLogoutCmd())
	cmd.AddCommand(newPlayerMeCmd())

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session under a display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := sessions.Login(cmd.Context(), name)
			if err != nil {
				if errors.Is(err, model.ErrInvalidName) {
					return fmt.Errorf("invalid name: %w", err)
				}
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(id)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name, 2-20 characters (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newPlayerMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentPlayer(cmd)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(id)
			return nil
		},
	}
}

// currentPlayer resolves the logged-in player, with a usage hint
// when there is none
func currentPlayer(cmd *cobra.Command) (model.PlayerIdentity, error) {
	id, err := sessions.Current(cmd.Context())
	if err != nil {
		if errors.Is(err, model.ErrNotLoggedIn) {
			return model.PlayerIdentity{}, fmt.Errorf("not logged in; run 'rpsduel player login --name <name>' first")
		}
		return model.PlayerIdentity{}, err
	}
	return id, nil
}
