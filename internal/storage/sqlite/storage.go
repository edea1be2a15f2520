// Package sqlite provides a SQLite-backed identity storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/mcoot/rebirth/internal/model"
	"github.com/mcoot/rebirth/internal/storage"
	"github.com/mcoot/rebirth/internal/storage/sqlite/migrations"
)

// Storage persists identities in a single SQLite table keyed by user key
type Storage struct {
	sqlDB *sql.DB
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Open opens (creating if needed) the database at path and applies migrations
func Open(path string) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: sqlite path is required", model.ErrStorageUnavailable)
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", model.ErrStorageUnavailable, err)
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite db: %v", model.ErrStorageUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: ping sqlite db: %v", model.ErrStorageUnavailable, err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: run migrations: %v", model.ErrStorageUnavailable, err)
	}
	return &Storage{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *Storage) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Storage) GetIdentity(ctx context.Context, key model.UserKey) (*model.Identity, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT user_key, race, job, gender, body_type, hair_color, eye_color, special_skill,
		        strength, agility, intelligence, charisma, luck, created_at
		   FROM identities WHERE user_key = ?`,
		string(key),
	)

	var (
		identity  model.Identity
		userKey   string
		createdAt int64
	)
	err := row.Scan(
		&userKey,
		&identity.Race,
		&identity.Job,
		&identity.Gender,
		&identity.BodyType,
		&identity.HairColor,
		&identity.EyeColor,
		&identity.SpecialSkill,
		&identity.Attributes.Strength,
		&identity.Attributes.Agility,
		&identity.Attributes.Intelligence,
		&identity.Attributes.Charisma,
		&identity.Luck,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrIdentityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get identity %s: %w", key, err)
	}

	identity.UserKey = model.UserKey(userKey)
	identity.CreatedAt = time.UnixMilli(createdAt)
	return &identity, nil
}

func (s *Storage) CreateIdentity(ctx context.Context, identity *model.Identity) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO identities (
		   user_key, race, job, gender, body_type, hair_color, eye_color, special_skill,
		   strength, agility, intelligence, charisma, luck, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(identity.UserKey),
		identity.Race,
		identity.Job,
		identity.Gender,
		identity.BodyType,
		identity.HairColor,
		identity.EyeColor,
		identity.SpecialSkill,
		identity.Attributes.Strength,
		identity.Attributes.Agility,
		identity.Attributes.Intelligence,
		identity.Attributes.Charisma,
		identity.Luck,
		identity.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrIdentityConflict
		}
		return fmt.Errorf("create identity %s: %w", identity.UserKey, err)
	}
	return nil
}

func (s *Storage) ClearIdentities(ctx context.Context) (int, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM identities`)
	if err != nil {
		return 0, fmt.Errorf("clear identities: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear identities: rows affected: %w", err)
	}
	return int(n), nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
