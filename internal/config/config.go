package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// ErrInvalid is returned when the process configuration cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Config is the server configuration read from the environment
type Config struct {
	Host        string `env:"HOST"`
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"sqlite" validate:"oneof=memory sqlite redis"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/rebirth.db" validate:"required_if=StorageType sqlite"`
	RedisURL    string `env:"REDIS_URL" validate:"required_if=StorageType redis"`

	// CatalogPath points at a YAML or JSON character catalog. Empty selects
	// the built-in catalog.
	CatalogPath string `env:"CATALOG_PATH"`

	// ResetTimezone is an IANA zone name for the midnight reset. Empty uses
	// the host's local zone.
	ResetTimezone string `env:"RESET_TIMEZONE"`
}

var validate = validator.New()

// Load reads the given dotenv files (".env" when none are named) into the
// process environment and parses the result. Missing dotenv files are
// ignored; variables already set in the environment take precedence.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: load %s: %v", ErrInvalid, f, err)
		}
	}
	return Parse()
}

// Parse reads the configuration from the process environment
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and that the reset timezone resolves
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level returns the slog level named by LogLevel
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Location returns the zone used to compute the daily reset
func (c *Config) Location() (*time.Location, error) {
	if c.ResetTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.ResetTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: RESET_TIMEZONE: %v", ErrInvalid, err)
	}
	return loc, nil
}
