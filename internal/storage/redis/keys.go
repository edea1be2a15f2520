package redis

import (
	"fmt"

	"github.com/mcoot/rebirth/internal/model"
)

// Key prefix for all identity data
const keyPrefix = "rebirth"

// identityKey returns the Redis key for a user's Identity
func identityKey(key model.UserKey) string {
	return fmt.Sprintf("%s:identity:%s", keyPrefix, key)
}

// identityIndexKey returns the Redis key for the SET of all identity keys
func identityIndexKey() string {
	return fmt.Sprintf("%s:idx:identities", keyPrefix)
}
