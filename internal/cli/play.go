package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mquinn/rpsduel-go/internal/dependencies/clock"
	"github.com/mquinn/rpsduel-go/internal/model"
	"github.com/mquinn/rpsduel-go/internal/services/play"
)

func newPlayCmd() *cobra.Command {
	var noDelay bool

	cmd := &cobra.Command{
		Use:   "play <rock|paper|scissors>",
		Short: "Play a round against the remote opponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			choice, err := model.ParseChoice(args[0])
			if err != nil {
				return err
			}

			id, err := currentPlayer(cmd)
			if err != nil {
				return err
			}

			playCfg := play.DefaultConfig()
			if noDelay {
				playCfg.SuspenseDelay = 0
			}
			orch := play.New(client, clock.New(), logger, playCfg)

			outcome, err := orch.Play(cmd.Context(), id.PlayerID, id.PlayerName, choice)
			if err != nil {
				if errors.Is(err, model.ErrRequestFailed) {
					logger.Debug("play failed", "error", err.Error())
					return errors.New(play.ConnectionFailedMessage)
				}
				return err
			}

			view := orch.View()
			out := NewOutput(cfg.Output)
			out.Print(PlayView{
				Outcome: *outcome,
				History: view.History,
				Stats:   view.Stats,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the pre-reveal suspense pause")

	return cmd
}
