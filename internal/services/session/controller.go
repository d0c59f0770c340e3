package session

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mquinn/rpsduel-go/internal/kv"
	"github.com/mquinn/rpsduel-go/internal/model"
	"github.com/mquinn/rpsduel-go/internal/services/identity"
)

// State is the login state of the session
type State string

const (
	StateLoggedOut State = "logged_out"
	StateLoggedIn  State = "logged_in"
)

// currentPlayerKey marks which player is active on this device
const currentPlayerKey = "current_player"

// Controller is the login/logout state machine. The state is keyed
// entirely off the persisted current-player marker, so a session
// started in one invocation survives into the next.
type Controller struct {
	identities *identity.Service
	store      kv.Store
}

// NewController creates a new session Controller
func NewController(identities *identity.Service, store kv.Store) *Controller {
	return &Controller{
		identities: identities,
		store:      store,
	}
}

// Login validates the name, resolves or creates its identity, and
// persists it as the current player. A name whose trimmed length is
// outside [2,20] is rejected with model.ErrInvalidName and the
// session state is unchanged.
func (c *Controller) Login(ctx context.Context, name string) (model.PlayerIdentity, error) {
	trimmed := strings.TrimSpace(name)
	if n := utf8.RuneCountInString(trimmed); n < model.MinNameLength || n > model.MaxNameLength {
		return model.PlayerIdentity{}, model.ErrInvalidName
	}

	id, err := c.identities.GetOrCreate(ctx, trimmed)
	if err != nil {
		return model.PlayerIdentity{}, err
	}

	if err := c.store.Set(ctx, currentPlayerKey, trimmed); err != nil {
		return model.PlayerIdentity{}, err
	}

	return id, nil
}

// Logout clears the persisted current-player marker. Logging out
// while logged out is a no-op.
func (c *Controller) Logout(ctx context.Context) error {
	return c.store.Delete(ctx, currentPlayerKey)
}

// Current resolves the persisted marker to a PlayerIdentity, or
// returns model.ErrNotLoggedIn when no player is active
func (c *Controller) Current(ctx context.Context) (model.PlayerIdentity, error) {
	name, err := c.store.Get(ctx, currentPlayerKey)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return model.PlayerIdentity{}, model.ErrNotLoggedIn
		}
		return model.PlayerIdentity{}, err
	}

	id, err := c.identities.Get(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrIdentityNotFound) {
			// Marker without a backing identity; treat as logged out
			return model.PlayerIdentity{}, model.ErrNotLoggedIn
		}
		return model.PlayerIdentity{}, err
	}

	return id, nil
}

// State reports whether a player is currently logged in
func (c *Controller) State(ctx context.Context) State {
	if _, err := c.Current(ctx); err != nil {
		return StateLoggedOut
	}
	return StateLoggedIn
}
