package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rebirth/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newIdentity(key model.UserKey, race string) *model.Identity {
	return &model.Identity{
		UserKey:    key,
		Race:       race,
		Job:        "Mage",
		Attributes: model.Attributes{Strength: 5, Agility: 7, Intelligence: 8, Charisma: 2},
		Luck:       42,
		CreatedAt:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestCreateAndGetIdentity() {
	err := s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetIdentity(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(*newIdentity("user-1", "Elf"), *retrieved)
}

func (s *StorageSuite) TestGetIdentityNotFound() {
	_, err := s.storage.GetIdentity(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestCreateIdentityConflictKeepsFirst() {
	s.Require().NoError(s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf")))

	err := s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Orc"))
	s.ErrorIs(err, model.ErrIdentityConflict)

	retrieved, err := s.storage.GetIdentity(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("Elf", retrieved.Race)
}

func (s *StorageSuite) TestDisplayNameIsNotPersisted() {
	identity := newIdentity("user-1", "Elf")
	identity.DisplayName = "Alice"
	s.Require().NoError(s.storage.CreateIdentity(s.ctx, identity))

	retrieved, err := s.storage.GetIdentity(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(retrieved.DisplayName)
}

func (s *StorageSuite) TestReturnedIdentityIsACopy() {
	s.Require().NoError(s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf")))

	first, _ := s.storage.GetIdentity(s.ctx, "user-1")
	first.Race = "Orc"

	second, _ := s.storage.GetIdentity(s.ctx, "user-1")
	s.Equal("Elf", second.Race)
}

func (s *StorageSuite) TestClearIdentities() {
	_ = s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf"))
	_ = s.storage.CreateIdentity(s.ctx, newIdentity("user-2", "Orc"))

	n, err := s.storage.ClearIdentities(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	_, err = s.storage.GetIdentity(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrIdentityNotFound)
	_, err = s.storage.GetIdentity(s.ctx, "user-2")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestClearIdentitiesEmptyIsIdempotent() {
	n, err := s.storage.ClearIdentities(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, n)

	n, err = s.storage.ClearIdentities(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *StorageSuite) TestConcurrentCreateOnlyOneWins() {
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.storage.CreateIdentity(s.ctx, newIdentity("user-1", "Elf")); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
}
