package model

import "errors"

// Common errors used across the application
var (
	// Identity errors
	ErrIdentityNotFound = errors.New("identity not found")
	ErrIdentityConflict = errors.New("identity already exists")
	ErrInvalidUserKey   = errors.New("user key is required")

	// Persistence errors
	ErrPersistence        = errors.New("identity could not be persisted")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Configuration errors
	ErrCatalogInvalid = errors.New("invalid character catalog")
)
