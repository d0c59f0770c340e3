package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show win/loss/draw counters for the current player",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := currentPlayer(cmd)
			if err != nil {
				return err
			}

			stats, err := client.Stats(cmd.Context(), id.PlayerID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(StatsView{Player: id, Stats: stats})
			return nil
		},
	}
}
