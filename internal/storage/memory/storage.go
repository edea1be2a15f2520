package memory

import (
	"context"
	"sync"

	"github.com/mcoot/rebirth/internal/model"
	"github.com/mcoot/rebirth/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Contents do not survive a restart.
type Storage struct {
	mu         sync.RWMutex
	identities map[model.UserKey]model.Identity
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		identities: make(map[model.UserKey]model.Identity),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetIdentity(ctx context.Context, key model.UserKey) (*model.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[key]
	if !ok {
		return nil, model.ErrIdentityNotFound
	}
	return &identity, nil
}

func (s *Storage) CreateIdentity(ctx context.Context, identity *model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.identities[identity.UserKey]; exists {
		return model.ErrIdentityConflict
	}
	stored := *identity
	stored.DisplayName = ""
	s.identities[identity.UserKey] = stored
	return nil
}

func (s *Storage) ClearIdentities(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.identities)
	s.identities = make(map[model.UserKey]model.Identity)
	return n, nil
}

func (s *Storage) Close() error {
	return nil
}
