package e2e_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mquinn/rpsduel-go/internal/model"
	"github.com/mquinn/rpsduel-go/internal/remote/remotetest"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	dataDir    string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "rpsduel-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rpsduel")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		dataDir:    t.TempDir(),
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--data-dir", r.dataDir,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

func TestFullPlayFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	fake := remotetest.NewServer()
	server := httptest.NewServer(fake.Handler())
	defer server.Close()

	cli := newCLIRunner(t, server.URL)

	// Login
	loginOut, err := cli.run("player", "login", "--name", "Alice")
	require.NoError(t, err, "login failed: %s", loginOut)

	var identity model.PlayerIdentity
	require.NoError(t, json.Unmarshal([]byte(loginOut), &identity))
	assert.Equal(t, "Alice", identity.PlayerName)
	assert.NotEmpty(t, identity.PlayerID)

	// Logging in again keeps the same identifier
	secondOut, err := cli.run("player", "login", "--name", "Alice")
	require.NoError(t, err, "second login failed: %s", secondOut)

	var secondIdentity model.PlayerIdentity
	require.NoError(t, json.Unmarshal([]byte(secondOut), &secondIdentity))
	assert.Equal(t, identity.PlayerID, secondIdentity.PlayerID)

	// Play a round; the fake AI throws scissors by default
	playOut, err := cli.run("play", "rock", "--no-delay")
	require.NoError(t, err, "play failed: %s", playOut)

	var playView struct {
		Outcome model.PlayOutcome  `json:"outcome"`
		History []model.GameRecord `json:"history"`
		Stats   model.PlayerStats  `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(playOut), &playView))
	assert.Equal(t, model.ResultWin, playView.Outcome.Result)
	assert.Len(t, playView.History, 1)
	assert.Equal(t, model.PlayerStats{Wins: 1, Total: 1}, playView.Stats)

	// History and stats endpoints agree
	historyOut, err := cli.run("history")
	require.NoError(t, err, "history failed: %s", historyOut)

	var historyView struct {
		Games []model.GameRecord `json:"games"`
	}
	require.NoError(t, json.Unmarshal([]byte(historyOut), &historyView))
	require.Len(t, historyView.Games, 1)
	assert.Equal(t, model.ChoiceRock, historyView.Games[0].PlayerChoice)

	statsOut, err := cli.run("stats")
	require.NoError(t, err, "stats failed: %s", statsOut)

	var statsView struct {
		Stats model.PlayerStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(statsOut), &statsView))
	assert.Equal(t, 1, statsView.Stats.Wins)
}

func TestLoginValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	fake := remotetest.NewServer()
	server := httptest.NewServer(fake.Handler())
	defer server.Close()

	cli := newCLIRunner(t, server.URL)

	out, err := cli.run("player", "login", "--name", "A")
	assert.Error(t, err)
	assert.Contains(t, out, "2-20 characters")

	// Rejected login leaves the session logged out
	out, err = cli.run("player", "me")
	assert.Error(t, err)
	assert.Contains(t, out, "not logged in")
}

func TestPlayRequiresLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	fake := remotetest.NewServer()
	server := httptest.NewServer(fake.Handler())
	defer server.Close()

	cli := newCLIRunner(t, server.URL)

	out, err := cli.run("play", "rock", "--no-delay")
	assert.Error(t, err)
	assert.Contains(t, out, "not logged in")
}

func TestPlayAgainstUnreachableService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	// Nothing is listening on this port
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	loginOut, err := cli.run("player", "login", "--name", "Alice")
	require.NoError(t, err, "login must not need the network: %s", loginOut)

	out, err := cli.run("play", "rock", "--no-delay")
	assert.Error(t, err)
	assert.Contains(t, out, "Connection failed")
}
