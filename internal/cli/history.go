package cli

import (
	"github.com/spf13/cobra"

	"github.com/mquinn/rpsduel-go/internal/model"
	"github.com/mquinn/rpsduel-go/internal/remote"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent games, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var playerID model.PlayerID
			if !all {
				id, err := currentPlayer(cmd)
				if err != nil {
					return err
				}
				playerID = id.PlayerID
			}

			games, err := client.History(cmd.Context(), playerID, limit)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(HistoryView{Games: games})
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", remote.DefaultHistoryLimit, "Number of games to fetch")
	cmd.Flags().BoolVar(&all, "all", false, "Show games from all players")

	return cmd
}
