package play

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mquinn/rpsduel-go/internal/dependencies/clock"
	"github.com/mquinn/rpsduel-go/internal/model"
)

// GameService is the remote opponent service as seen by the
// orchestrator: submit a move, fetch history, fetch stats
type GameService interface {
	Play(ctx context.Context, id model.PlayerID, name string, choice model.Choice) (*model.PlayOutcome, error)
	History(ctx context.Context, id model.PlayerID, limit int) ([]model.GameRecord, error)
	Stats(ctx context.Context, id model.PlayerID) (model.PlayerStats, error)
}

// Phase is the per-play-attempt state
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseAnimating Phase = "animating"
	PhaseResolved  Phase = "resolved"
	PhaseFailed    Phase = "failed"
)

// ConnectionFailedMessage is shown when the service cannot be reached
const ConnectionFailedMessage = "Connection failed. Please try again."

// Config holds orchestrator settings
type Config struct {
	// SuspenseDelay is a fixed pacing pause taken before the move is
	// submitted. It is a UX contract, not a network wait.
	SuspenseDelay time.Duration

	// HistoryLimit is how many records to request on refresh
	HistoryLimit int
}

// DefaultConfig returns default orchestrator settings
func DefaultConfig() Config {
	return Config{
		SuspenseDelay: 800 * time.Millisecond,
		HistoryLimit:  10,
	}
}

// View is a snapshot of the display state: the current phase, the
// last outcome or failure message, and the cached history and stats
type View struct {
	Phase    Phase
	Outcome  *model.PlayOutcome
	ErrorMsg string
	History  []model.GameRecord
	Stats    model.PlayerStats
}

// Orchestrator sequences a play attempt: pacing delay, move
// submission, then a joint history/stats refresh. A single phase
// flag is the only mutual-exclusion mechanism; there is no queue.
type Orchestrator struct {
	svc    GameService
	clock  clock.Clock
	logger *slog.Logger
	cfg    Config

	mu    sync.Mutex
	phase Phase
	view  View
}

// New creates a new Orchestrator
func New(svc GameService, clock clock.Clock, logger *slog.Logger, cfg Config) *Orchestrator {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = DefaultConfig().HistoryLimit
	}
	return &Orchestrator{
		svc:    svc,
		clock:  clock,
		logger: logger,
		cfg:    cfg,
		phase:  PhaseIdle,
	}
}

// Play runs one attempt through the phase machine:
// Idle -> Animating -> Resolved|Failed -> Idle. Re-entry while an
// attempt is in flight is rejected without touching the network.
// Input is re-enabled (phase Idle) regardless of outcome.
func (o *Orchestrator) Play(ctx context.Context, id model.PlayerID, name string, choice model.Choice) (*model.PlayOutcome, error) {
	o.mu.Lock()
	if o.phase != PhaseIdle {
		o.mu.Unlock()
		return nil, model.ErrPlayInProgress
	}
	o.phase = PhaseAnimating
	o.view.Outcome = nil
	o.view.ErrorMsg = ""
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.phase = PhaseIdle
		o.mu.Unlock()
	}()

	if err := o.clock.Sleep(ctx, o.cfg.SuspenseDelay); err != nil {
		// Cancelled mid-animation; nothing was sent
		return nil, err
	}

	outcome, err := o.svc.Play(ctx, id, name, choice)
	if err != nil {
		o.mu.Lock()
		o.phase = PhaseFailed
		o.view.ErrorMsg = ConnectionFailedMessage
		o.mu.Unlock()
		return nil, err
	}

	o.mu.Lock()
	o.phase = PhaseResolved
	o.view.Outcome = outcome
	o.mu.Unlock()

	o.refresh(ctx, id)

	return outcome, nil
}

// Refresh re-fetches history and stats concurrently and jointly
// awaits both. A failure on either side is logged and swallowed;
// the prior cached values are retained.
func (o *Orchestrator) Refresh(ctx context.Context, id model.PlayerID) {
	o.refresh(ctx, id)
}

func (o *Orchestrator) refresh(ctx context.Context, id model.PlayerID) {
	var (
		wg         sync.WaitGroup
		history    []model.GameRecord
		historyErr error
		stats      model.PlayerStats
		statsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		history, historyErr = o.svc.History(ctx, id, o.cfg.HistoryLimit)
	}()
	go func() {
		defer wg.Done()
		stats, statsErr = o.svc.Stats(ctx, id)
	}()
	wg.Wait()

	o.mu.Lock()
	defer o.mu.Unlock()

	if historyErr != nil {
		o.logger.Warn("history refresh failed", slog.String("error", historyErr.Error()))
	} else {
		o.view.History = history
	}

	if statsErr != nil {
		o.logger.Warn("stats refresh failed", slog.String("error", statsErr.Error()))
	} else {
		o.view.Stats = stats
	}
}

// View returns a snapshot of the current display state
func (o *Orchestrator) View() View {
	o.mu.Lock()
	defer o.mu.Unlock()

	snapshot := o.view
	snapshot.Phase = o.phase
	if o.view.History != nil {
		snapshot.History = make([]model.GameRecord, len(o.view.History))
		copy(snapshot.History, o.view.History)
	}
	return snapshot
}
