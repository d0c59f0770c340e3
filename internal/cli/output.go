package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mquinn/rpsduel-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.PlayerIdentity:
		o.printIdentity(v)
	case PlayView:
		o.printPlayView(v)
	case HistoryView:
		o.printHistoryView(v)
	case StatsView:
		o.printStatsView(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// PlayView combines a resolved play with the refreshed history
// and stats shown alongside it
type PlayView struct {
	Outcome model.PlayOutcome  `json:"outcome"`
	History []model.GameRecord `json:"history"`
	Stats   model.PlayerStats  `json:"stats"`
}

// HistoryView wraps a list of game records
type HistoryView struct {
	Games []model.GameRecord `json:"games"`
}

// StatsView combines a player with their aggregate counters
type StatsView struct {
	Player model.PlayerIdentity `json:"player"`
	Stats  model.PlayerStats    `json:"stats"`
}

func (o *Output) printIdentity(id model.PlayerIdentity) {
	fmt.Printf("Player: %s (%s)\n", id.PlayerName, id.PlayerID)
}

func (o *Output) printPlayView(v PlayView) {
	fmt.Printf("You threw %s %s\n", v.Outcome.PlayerChoice.Emoji(), v.Outcome.PlayerChoice)
	fmt.Printf("AI threw  %s %s\n", v.Outcome.AIChoice.Emoji(), v.Outcome.AIChoice)
	fmt.Println()
	fmt.Println(v.Outcome.Result.Display())

	if len(v.History) > 0 {
		fmt.Println("\nRecent games:")
		for _, g := range v.History {
			o.printRecord(g)
		}
	}

	fmt.Println()
	o.printStats(v.Stats)
}

func (o *Output) printHistoryView(v HistoryView) {
	if len(v.Games) == 0 {
		fmt.Println("No games yet")
		return
	}
	for _, g := range v.Games {
		o.printRecord(g)
	}
}

func (o *Output) printStatsView(v StatsView) {
	fmt.Printf("Player: %s (%s)\n", v.Player.PlayerName, v.Player.PlayerID)
	o.printStats(v.Stats)
}

func (o *Output) printRecord(g model.GameRecord) {
	fmt.Printf("  %s  %s %-8s vs %s %-8s  %s (%s)\n",
		g.Timestamp.Local().Format("2006-01-02 15:04"),
		g.PlayerEmoji, g.PlayerChoice,
		g.AIEmoji, g.AIChoice,
		g.Result.Display(), g.PlayerName,
	)
}

func (o *Output) printStats(s model.PlayerStats) {
	fmt.Printf("Stats: %dW %dL %dD of %d games (%d%% win rate)\n",
		s.Wins, s.Losses, s.Draws, s.Total, s.WinRate())
}
