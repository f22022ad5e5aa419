package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"uma-vasp-backend/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const requestCacheTTL = time.Hour

// RequestCache implements ports.RequestCache using Redis. Entries are
// JSON blobs keyed by a fresh UUID per payment step.
type RequestCache struct {
	client *goredis.Client
	prefix string
}

// NewRequestCache creates a new Redis-backed request cache.
func NewRequestCache(client *goredis.Client) *RequestCache {
	return &RequestCache{
		client: client,
		prefix: "reqcache:",
	}
}

// SaveLnurlpResponseData stores a lookup result under a new callback UUID.
func (c *RequestCache) SaveLnurlpResponseData(ctx context.Context, data ports.LnurlpResponseData) (uuid.UUID, error) {
	id := uuid.New()
	if err := c.setJSON(ctx, "lnurlp:"+id.String(), data); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetLnurlpResponseData fetches a cached lookup result.
// Returns nil, nil on a miss or expiry.
func (c *RequestCache) GetLnurlpResponseData(ctx context.Context, id uuid.UUID) (*ports.LnurlpResponseData, error) {
	var data ports.LnurlpResponseData
	found, err := c.getJSON(ctx, "lnurlp:"+id.String(), &data)
	if err != nil || !found {
		return nil, err
	}
	return &data, nil
}

// SavePayReqData stores a pay request result under a new callback UUID.
func (c *RequestCache) SavePayReqData(ctx context.Context, data ports.PayReqCacheData) (uuid.UUID, error) {
	id := uuid.New()
	if err := c.setJSON(ctx, "payreq:"+id.String(), data); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// GetPayReqData fetches a cached pay request result.
// Returns nil, nil on a miss or expiry.
func (c *RequestCache) GetPayReqData(ctx context.Context, id uuid.UUID) (*ports.PayReqCacheData, error) {
	var data ports.PayReqCacheData
	found, err := c.getJSON(ctx, "payreq:"+id.String(), &data)
	if err != nil || !found {
		return nil, err
	}
	return &data, nil
}

// DeletePayReqData drops a pay request entry after the payment settles.
func (c *RequestCache) DeletePayReqData(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, c.prefix+"payreq:"+id.String()).Err(); err != nil {
		return fmt.Errorf("redis request cache del: %w", err)
	}
	return nil
}

// SaveSession stores an opaque session blob with its own TTL.
func (c *RequestCache) SaveSession(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+"session:"+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

// GetSession fetches a session blob. Returns nil, nil on a miss.
func (c *RequestCache) GetSession(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+"session:"+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}
	return val, nil
}

// DeleteSession drops a session blob.
func (c *RequestCache) DeleteSession(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.prefix+"session:"+key).Err(); err != nil {
		return fmt.Errorf("redis session del: %w", err)
	}
	return nil
}

func (c *RequestCache) setJSON(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, b, requestCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis request cache set: %w", err)
	}
	return nil
}

func (c *RequestCache) getJSON(ctx context.Context, key string, out any) (bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis request cache get: %w", err)
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false, fmt.Errorf("unmarshal cache entry: %w", err)
	}
	return true, nil
}
