package model

import (
	"fmt"
	"math"
	"time"
)

// Choice is a move a player can throw
type Choice string

const (
	ChoiceRock     Choice = "rock"
	ChoicePaper    Choice = "paper"
	ChoiceScissors Choice = "scissors"
)

// Choices lists all valid choices in display order
var Choices = []Choice{ChoiceRock, ChoicePaper, ChoiceScissors}

// ParseChoice converts a string into a Choice
func ParseChoice(s string) (Choice, error) {
	switch Choice(s) {
	case ChoiceRock, ChoicePaper, ChoiceScissors:
		return Choice(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

// Emoji returns the display emoji for a choice
func (c Choice) Emoji() string {
	switch c {
	case ChoiceRock:
		return "✊"
	case ChoicePaper:
		return "✋"
	case ChoiceScissors:
		return "✌️"
	}
	return "❓"
}

// Result is the outcome of a round from the player's perspective.
// It is determined exclusively by the remote service; the client
// never computes it.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
	ResultDraw Result = "draw"
)

// Display returns the user-facing outcome text
func (r Result) Display() string {
	switch r {
	case ResultWin:
		return "You Win!"
	case ResultLose:
		return "You Lose!"
	case ResultDraw:
		return "It's a Draw!"
	}
	return string(r)
}

// PlayerID uniquely identifies a player across sessions
type PlayerID string

// Display name length bounds, enforced at login
const (
	MinNameLength = 2
	MaxNameLength = 20
)

// PlayerIdentity is a stable identifier plus display name,
// persisted locally so the same name keeps the same identifier
type PlayerIdentity struct {
	PlayerID   PlayerID `json:"playerId"`
	PlayerName string   `json:"playerName"`
}

// GameRecord is one completed round as produced by the remote
// service. The client only reads records back, never mutates them.
type GameRecord struct {
	ID           string    `json:"id"`
	PlayerID     PlayerID  `json:"playerId"`
	PlayerName   string    `json:"playerName"`
	PlayerChoice Choice    `json:"playerChoice"`
	AIChoice     Choice    `json:"aiChoice"`
	Result       Result    `json:"result"`
	Timestamp    time.Time `json:"timestamp"`
	PlayerEmoji  string    `json:"playerEmoji"`
	AIEmoji      string    `json:"aiEmoji"`
}

// PlayerStats holds aggregate counters recomputed by the remote
// service. The client keeps only a display cache of these values.
type PlayerStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
	Total  int `json:"total"`
}

// WinRate returns the win percentage rounded to the nearest integer,
// or 0 when no games have been played
func (s PlayerStats) WinRate() int {
	if s.Total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Wins) / float64(s.Total) * 100))
}

// PlayOutcome is the resolved outcome of a single play as returned
// by the remote service
type PlayOutcome struct {
	PlayerChoice Choice     `json:"playerChoice"`
	AIChoice     Choice     `json:"aiChoice"`
	Result       Result     `json:"result"`
	Record       GameRecord `json:"record"`
}
