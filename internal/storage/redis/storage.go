package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/rebirth/internal/model"
	"github.com/mcoot/rebirth/internal/storage"
)

// createScript stores the identity only if the key is free and records it in
// the index, as one atomic step. Returns 1 on insert, 0 on conflict.
var createScript = redis.NewScript(`
if redis.call('SETNX', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('SADD', KEYS[2], KEYS[1])
return 1
`)

// clearScript deletes every indexed identity and the index itself.
// Returns the number of identities removed.
var clearScript = redis.NewScript(`
local keys = redis.call('SMEMBERS', KEYS[1])
local removed = 0
for _, key in ipairs(keys) do
	removed = removed + redis.call('DEL', key)
end
redis.call('DEL', KEYS[1])
return removed
`)

// Storage is a Redis-backed implementation of the storage interface.
// Durability across restarts depends on the server's persistence settings.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis url: %v", model.ErrStorageUnavailable, err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping redis: %v", model.ErrStorageUnavailable, err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetIdentity(ctx context.Context, key model.UserKey) (*model.Identity, error) {
	data, err := s.client.Get(ctx, identityKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("get identity %s: %w", key, err)
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("decode identity %s: %w", key, err)
	}
	return &identity, nil
}

func (s *Storage) CreateIdentity(ctx context.Context, identity *model.Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	keys := []string{identityKey(identity.UserKey), identityIndexKey()}
	created, err := createScript.Run(ctx, s.client, keys, data).Int()
	if err != nil {
		return fmt.Errorf("create identity %s: %w", identity.UserKey, err)
	}
	if created == 0 {
		return model.ErrIdentityConflict
	}
	return nil
}

func (s *Storage) ClearIdentities(ctx context.Context) (int, error) {
	removed, err := clearScript.Run(ctx, s.client, []string{identityIndexKey()}).Int()
	if err != nil {
		return 0, fmt.Errorf("clear identities: %w", err)
	}
	return removed, nil
}
