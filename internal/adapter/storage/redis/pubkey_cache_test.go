package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uma-universal-money-address/uma-go-sdk/uma/protocol"
)

func strPtr(s string) *string { return &s }

func TestPubKeyCache_RoundTrip(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewPubKeyCache(client)

	assert.Nil(t, cache.FetchPublicKeyForVasp("other.example"))

	entry := &protocol.PubKeyResponse{
		SigningPubKeyHex:    strPtr("02aabb"),
		EncryptionPubKeyHex: strPtr("03ccdd"),
	}
	cache.AddPublicKeyForVasp("other.example", entry)

	got := cache.FetchPublicKeyForVasp("other.example")
	require.NotNil(t, got)
	require.NotNil(t, got.SigningPubKeyHex)
	assert.Equal(t, "02aabb", *got.SigningPubKeyHex)
}

func TestPubKeyCache_ExpiredEntryIsMiss(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewPubKeyCache(client)

	past := time.Now().Add(-time.Hour).Unix()
	entry := &protocol.PubKeyResponse{
		SigningPubKeyHex:    strPtr("02aabb"),
		ExpirationTimestamp: &past,
	}
	cache.AddPublicKeyForVasp("stale.example", entry)

	assert.Nil(t, cache.FetchPublicKeyForVasp("stale.example"))
}

func TestPubKeyCache_RemoveAndClear(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewPubKeyCache(client)

	entry := &protocol.PubKeyResponse{SigningPubKeyHex: strPtr("02aabb")}
	cache.AddPublicKeyForVasp("a.example", entry)
	cache.AddPublicKeyForVasp("b.example", entry)

	cache.RemovePublicKeyForVasp("a.example")
	assert.Nil(t, cache.FetchPublicKeyForVasp("a.example"))
	assert.NotNil(t, cache.FetchPublicKeyForVasp("b.example"))

	cache.Clear()
	assert.Nil(t, cache.FetchPublicKeyForVasp("b.example"))
}
