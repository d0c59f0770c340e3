package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mquinn/rpsduel-go/internal/model"
	"github.com/mquinn/rpsduel-go/internal/remote"
	"github.com/mquinn/rpsduel-go/internal/remote/remotetest"
	"github.com/mquinn/rpsduel-go/internal/services/play"
)

// The client must satisfy the orchestrator's view of the service
var _ play.GameService = (*remote.Client)(nil)

func newTestClient(t *testing.T) (*remote.Client, *remotetest.Server) {
	t.Helper()

	fake := remotetest.NewServer()
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)

	return remote.NewClient(server.URL), fake
}

func TestPlayReturnsServiceOutcome(t *testing.T) {
	client, fake := newTestClient(t)
	fake.NextAIChoice = model.ChoiceScissors

	outcome, err := client.Play(context.Background(), "p_1", "Alice", model.ChoiceRock)
	require.NoError(t, err)

	assert.Equal(t, model.ChoiceRock, outcome.PlayerChoice)
	assert.Equal(t, model.ChoiceScissors, outcome.AIChoice)
	assert.Equal(t, model.ResultWin, outcome.Result)
	assert.Equal(t, "Alice", outcome.Record.PlayerName)
	assert.Equal(t, "✊", outcome.Record.PlayerEmoji)
}

func TestPlayFailsOnServerError(t *testing.T) {
	client, fake := newTestClient(t)
	fake.FailNext = true

	_, err := client.Play(context.Background(), "p_1", "Alice", model.ChoiceRock)
	assert.ErrorIs(t, err, model.ErrRequestFailed)
}

func TestPlayFailsOnTransportError(t *testing.T) {
	// Nothing is listening on this port
	client := remote.NewClient("http://127.0.0.1:1")

	_, err := client.Play(context.Background(), "p_1", "Alice", model.ChoiceRock)
	assert.ErrorIs(t, err, model.ErrRequestFailed)
}

func TestHistoryReturnsMostRecentFirst(t *testing.T) {
	client, fake := newTestClient(t)
	ctx := context.Background()

	fake.NextAIChoice = model.ChoiceScissors
	_, err := client.Play(ctx, "p_1", "Alice", model.ChoiceRock)
	require.NoError(t, err)
	fake.NextAIChoice = model.ChoicePaper
	_, err = client.Play(ctx, "p_1", "Alice", model.ChoiceScissors)
	require.NoError(t, err)

	games, err := client.History(ctx, "p_1", 10)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, model.ChoiceScissors, games[0].PlayerChoice)
	assert.Equal(t, model.ChoiceRock, games[1].PlayerChoice)
}

func TestHistoryFiltersByPlayer(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.Play(ctx, "p_1", "Alice", model.ChoiceRock)
	require.NoError(t, err)
	_, err = client.Play(ctx, "p_2", "Bob", model.ChoicePaper)
	require.NoError(t, err)

	games, err := client.History(ctx, "p_1", 10)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, model.PlayerID("p_1"), games[0].PlayerID)

	all, err := client.History(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestHistoryMissingGamesFieldDefaultsToEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)

	games, err := client.History(context.Background(), "p_1", 10)
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}

func TestHistoryClampsLimit(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"games":[]}`))
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	ctx := context.Background()

	_, err := client.History(ctx, "p_1", 0)
	require.NoError(t, err)
	assert.Equal(t, "10", gotLimit)

	_, err = client.History(ctx, "p_1", 100)
	require.NoError(t, err)
	assert.Equal(t, "20", gotLimit)
}

func TestStatsAggregatesPlays(t *testing.T) {
	client, fake := newTestClient(t)
	ctx := context.Background()

	fake.NextAIChoice = model.ChoiceScissors
	_, err := client.Play(ctx, "p_1", "Alice", model.ChoiceRock) // win
	require.NoError(t, err)
	_, err = client.Play(ctx, "p_1", "Alice", model.ChoicePaper) // lose
	require.NoError(t, err)
	_, err = client.Play(ctx, "p_1", "Alice", model.ChoiceScissors) // draw
	require.NoError(t, err)

	stats, err := client.Stats(ctx, "p_1")
	require.NoError(t, err)

	assert.Equal(t, model.PlayerStats{Wins: 1, Losses: 1, Draws: 1, Total: 3}, stats)
}

func TestStatsForUnknownPlayerIsZero(t *testing.T) {
	client, _ := newTestClient(t)

	stats, err := client.Stats(context.Background(), "p_unknown")
	require.NoError(t, err)
	assert.Equal(t, model.PlayerStats{}, stats)
}
