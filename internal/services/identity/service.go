package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mcoot/rebirth/internal/dependencies/clock"
	"github.com/mcoot/rebirth/internal/metrics"
	"github.com/mcoot/rebirth/internal/model"
	"github.com/mcoot/rebirth/internal/services/generator"
	"github.com/mcoot/rebirth/internal/storage"
)

// Service hands out one identity per user per day
type Service struct {
	storage   storage.Storage
	generator *generator.Generator
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new identity Service
func New(storage storage.Storage, gen *generator.Generator, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		generator: gen,
		clock:     clock,
		logger:    logger,
	}
}

// GetOrCreate returns today's identity for the user, generating and storing
// one on first use. When two callers race to create the same identity the
// first stored record wins and both receive it. The display name is attached
// to the returned copy only.
func (s *Service) GetOrCreate(ctx context.Context, key model.UserKey, displayName string) (*model.Identity, error) {
	if strings.TrimSpace(string(key)) == "" {
		return nil, model.ErrInvalidUserKey
	}

	existing, err := s.storage.GetIdentity(ctx, key)
	if err == nil {
		metrics.IdentityLookupsTotal.WithLabelValues(metrics.LookupHit).Inc()
		s.logger.Debug("identity found", slog.String("user_key", string(key)))
		return existing.WithDisplayName(displayName), nil
	}
	if !errors.Is(err, model.ErrIdentityNotFound) {
		return nil, s.fail(key, "lookup", err)
	}

	// Backends keep millisecond precision; truncate so a fresh identity
	// matches what later lookups read back.
	created := s.generator.Generate(key, s.clock.Now().Truncate(time.Millisecond))
	err = s.storage.CreateIdentity(ctx, created)
	switch {
	case err == nil:
		metrics.IdentityLookupsTotal.WithLabelValues(metrics.LookupCreated).Inc()
		s.logCreated(created)
		return created.WithDisplayName(displayName), nil

	case errors.Is(err, model.ErrIdentityConflict):
		winner, getErr := s.storage.GetIdentity(ctx, key)
		if getErr != nil {
			return nil, s.fail(key, "read back", getErr)
		}
		metrics.IdentityLookupsTotal.WithLabelValues(metrics.LookupConflict).Inc()
		s.logger.Info("identity created concurrently, using stored record",
			slog.String("user_key", string(key)),
		)
		return winner.WithDisplayName(displayName), nil

	default:
		return nil, s.fail(key, "create", err)
	}
}

// fail wraps a storage error as a persistence failure
func (s *Service) fail(key model.UserKey, op string, err error) error {
	metrics.IdentityLookupsTotal.WithLabelValues(metrics.LookupError).Inc()
	s.logger.Error("identity generation failed",
		slog.String("user_key", string(key)),
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%w: %s: %v", model.ErrPersistence, op, err)
}

func (s *Service) logCreated(id *model.Identity) {
	s.logger.Info("identity generated",
		slog.String("user_key", string(id.UserKey)),
		slog.String("race", id.Race),
		slog.String("job", id.Job),
		slog.Int("strength", id.Attributes.Strength),
		slog.Int("agility", id.Attributes.Agility),
		slog.Int("intelligence", id.Attributes.Intelligence),
		slog.Int("charisma", id.Attributes.Charisma),
		slog.Int("luck", id.Luck),
		slog.String("special_skill", id.SpecialSkill),
		slog.String("gender", id.Gender),
		slog.String("body_type", id.BodyType),
		slog.String("hair_color", id.HairColor),
		slog.String("eye_color", id.EyeColor),
	)
}
