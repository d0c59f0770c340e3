package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/mquinn/rpsduel-go/internal/dependencies/random"
	"github.com/mquinn/rpsduel-go/internal/kv"
	"github.com/mquinn/rpsduel-go/internal/model"
)

// Service derives and persists stable per-player identifiers. One
// identity record is kept per display name, so several players can
// share a device without colliding.
type Service struct {
	store  kv.Store
	random random.Random
}

// New creates a new identity Service
func New(store kv.Store, random random.Random) *Service {
	return &Service{
		store:  store,
		random: random,
	}
}

// GetOrCreate returns the persisted identity for name, generating
// and persisting a new random identifier on first use. Calling it
// again for the same name returns the same identifier.
func (s *Service) GetOrCreate(ctx context.Context, name string) (model.PlayerIdentity, error) {
	key := identityKey(name)

	value, err := s.store.Get(ctx, key)
	if err == nil {
		return model.PlayerIdentity{
			PlayerID:   model.PlayerID(value),
			PlayerName: name,
		}, nil
	}
	if !errors.Is(err, model.ErrKeyNotFound) {
		return model.PlayerIdentity{}, err
	}

	id := model.PlayerID(s.random.ID("p_"))
	if err := s.store.Set(ctx, key, string(id)); err != nil {
		return model.PlayerIdentity{}, err
	}

	return model.PlayerIdentity{
		PlayerID:   id,
		PlayerName: name,
	}, nil
}

// Get returns the persisted identity for name, or
// model.ErrIdentityNotFound if none exists
func (s *Service) Get(ctx context.Context, name string) (model.PlayerIdentity, error) {
	value, err := s.store.Get(ctx, identityKey(name))
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return model.PlayerIdentity{}, model.ErrIdentityNotFound
		}
		return model.PlayerIdentity{}, err
	}

	return model.PlayerIdentity{
		PlayerID:   model.PlayerID(value),
		PlayerName: name,
	}, nil
}

// identityKey returns the store key for a display name
func identityKey(name string) string {
	return fmt.Sprintf("identity:%s", name)
}
