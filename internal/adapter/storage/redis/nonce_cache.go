package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceCache implements the UMA SDK's uma.NonceCache against Redis using
// SET NX, so signature nonces stay unique across restarts and replicas.
type NonceCache struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewNonceCache creates a new Redis-backed nonce cache. Nonces older than
// ttl are considered invalid and their keys are left to expire.
func NewNonceCache(client *goredis.Client, ttl time.Duration) *NonceCache {
	return &NonceCache{
		client: client,
		prefix: "umanonce:",
		ttl:    ttl,
	}
}

// CheckAndSaveNonce rejects nonces that are too old or already seen.
func (c *NonceCache) CheckAndSaveNonce(nonce string, timestamp time.Time) error {
	if time.Since(timestamp) > c.ttl {
		return errors.New("timestamp too old")
	}

	ctx := context.Background()
	key := c.prefix + nonce
	result, err := c.client.SetArgs(ctx, key, strconv.FormatInt(timestamp.Unix(), 10), goredis.SetArgs{
		Mode: "NX",
		TTL:  c.ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return errors.New("nonce already used")
		}
		return fmt.Errorf("redis nonce check: %w", err)
	}
	if result != "OK" {
		return errors.New("nonce already used")
	}
	return nil
}

// PurgeNoncesOlderThan is a no-op: Redis expires nonce keys via TTL.
func (c *NonceCache) PurgeNoncesOlderThan(_ time.Time) {}
