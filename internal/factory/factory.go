package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/rebirth/internal/catalog"
	"github.com/mcoot/rebirth/internal/dependencies/clock"
	"github.com/mcoot/rebirth/internal/dependencies/random"
	"github.com/mcoot/rebirth/internal/services/generator"
	"github.com/mcoot/rebirth/internal/services/identity"
	"github.com/mcoot/rebirth/internal/services/reset"
	"github.com/mcoot/rebirth/internal/storage"
	"github.com/mcoot/rebirth/internal/storage/memory"
	redisstorage "github.com/mcoot/rebirth/internal/storage/redis"
	"github.com/mcoot/rebirth/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Catalog         *catalog.Catalog
	Generator       *generator.Generator
	IdentityService *identity.Service
	Scheduler       *reset.Scheduler
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "sqlite" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Catalog supplies the character enumerations (optional)
	// If nil, catalog.Default() is used
	Catalog *catalog.Catalog
	// Location is the zone for the midnight reset (optional, defaults to time.Local)
	Location *time.Location
}

// New creates a new application with all dependencies wired.
// The scheduler is returned stopped; callers start it once serving.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), cat, cfg.Location, logger), nil
}

func openStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqliteStore, nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return redisStore, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'sqlite' or 'redis'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cat *catalog.Catalog, loc *time.Location, logger *slog.Logger) *App {
	gen := generator.New(cat, rnd)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Catalog:         cat,
		Generator:       gen,
		IdentityService: identity.New(store, gen, clk, logger),
		Scheduler:       reset.New(store, clk, loc, logger),
	}
}
