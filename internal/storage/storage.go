package storage

import (
	"context"

	"github.com/mcoot/rebirth/internal/model"
)

// Storage defines the interface for identity persistence.
// Every mutation is atomic on its own; no operation spans a get and a create.
type Storage interface {
	// GetIdentity returns the stored identity or model.ErrIdentityNotFound
	GetIdentity(ctx context.Context, key model.UserKey) (*model.Identity, error)

	// CreateIdentity inserts a new identity. It returns model.ErrIdentityConflict
	// if one already exists for the key; the stored record is left untouched.
	CreateIdentity(ctx context.Context, identity *model.Identity) error

	// ClearIdentities removes every identity and returns how many were removed
	ClearIdentities(ctx context.Context) (int, error)

	// Close releases the underlying connection
	Close() error
}
