package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mquinn/rpsduel-go/internal/model"
)

type StoreSuite struct {
	suite.Suite
	mini  *miniredis.Miniredis
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.store = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	if s.store != nil {
		_ = s.store.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StoreSuite) TestSetAndGet() {
	err := s.store.Set(s.ctx, "identity:Alice", "p_abc123")
	s.Require().NoError(err)

	value, err := s.store.Get(s.ctx, "identity:Alice")
	s.Require().NoError(err)
	s.Equal("p_abc123", value)
}

func (s *StoreSuite) TestGetMissingKey() {
	_, err := s.store.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StoreSuite) TestKeysAreNamespaced() {
	err := s.store.Set(s.ctx, "identity:Alice", "p_abc123")
	s.Require().NoError(err)

	stored, err := s.mini.Get("rpsduel:kv:identity:Alice")
	s.Require().NoError(err)
	s.Equal("p_abc123", stored)
}

func (s *StoreSuite) TestSetHasNoTTL() {
	err := s.store.Set(s.ctx, "identity:Alice", "p_abc123")
	s.Require().NoError(err)

	s.Equal(int64(0), int64(s.mini.TTL("rpsduel:kv:identity:Alice")))
}

func (s *StoreSuite) TestDelete() {
	s.Require().NoError(s.store.Set(s.ctx, "k", "v"))
	s.Require().NoError(s.store.Delete(s.ctx, "k"))

	_, err := s.store.Get(s.ctx, "k")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StoreSuite) TestDeleteMissingKeyIsNoop() {
	err := s.store.Delete(s.ctx, "nonexistent")
	s.NoError(err)
}
