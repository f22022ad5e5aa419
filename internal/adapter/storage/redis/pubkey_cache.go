package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
)

const defaultPubKeyTTL = 24 * time.Hour

// PubKeyCache implements the UMA SDK's uma.PublicKeyCache against Redis,
// so fetched counterparty keys are shared across replicas. The SDK
// interface is synchronous, so lookups use a background context and
// failures degrade to a cache miss.
type PubKeyCache struct {
	client *goredis.Client
	prefix string
}

// NewPubKeyCache creates a new Redis-backed VASP public key cache.
func NewPubKeyCache(client *goredis.Client) *PubKeyCache {
	return &PubKeyCache{
		client: client,
		prefix: "vasppubkey:",
	}
}

// FetchPublicKeyForVasp returns the cached key entry for a VASP, or nil.
func (c *PubKeyCache) FetchPublicKeyForVasp(vaspDomain string) *protocol.PubKeyResponse {
	val, err := c.client.Get(context.Background(), c.prefix+vaspDomain).Bytes()
	if err != nil {
		return nil
	}
	var resp protocol.PubKeyResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil
	}
	if resp.ExpirationTimestamp != nil && time.Unix(*resp.ExpirationTimestamp, 0).Before(time.Now()) {
		return nil
	}
	return &resp
}

// AddPublicKeyForVasp caches a VASP's key entry until it expires.
func (c *PubKeyCache) AddPublicKeyForVasp(vaspDomain string, pubKey *protocol.PubKeyResponse) {
	b, err := json.Marshal(pubKey)
	if err != nil {
		return
	}
	ttl := defaultPubKeyTTL
	if pubKey.ExpirationTimestamp != nil {
		until := time.Until(time.Unix(*pubKey.ExpirationTimestamp, 0))
		if until > 0 && until < ttl {
			ttl = until
		}
	}
	c.client.Set(context.Background(), c.prefix+vaspDomain, b, ttl)
}

// RemovePublicKeyForVasp drops a VASP's cached key entry.
func (c *PubKeyCache) RemovePublicKeyForVasp(vaspDomain string) {
	c.client.Del(context.Background(), c.prefix+vaspDomain)
}

// Clear drops all cached key entries.
func (c *PubKeyCache) Clear() {
	ctx := context.Background()
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		c.client.Del(ctx, keys...)
	}
}
