package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinbaseClient_Rates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"currency":"BTC","rates":{"USD":"65123.45","MXN":"1103937.12","SAT":"100000000","bogus":"not-a-number"}}}`))
	}))
	defer srv.Close()

	client := NewCoinbaseClientWithHTTP(srv.URL, srv.Client(), zerolog.Nop())

	rates, err := client.Rates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 65123.45, rates["USD"], 0.001)
	assert.InDelta(t, 1103937.12, rates["MXN"], 0.001)
	assert.InDelta(t, 1e8, rates["SAT"], 0.001)
	_, ok := rates["bogus"]
	assert.False(t, ok, "unparsable rates are skipped")
}

func TestCoinbaseClient_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"currency":"BTC","rates":{}}}`))
	}))
	defer srv.Close()

	client := NewCoinbaseClientWithHTTP(srv.URL, srv.Client(), zerolog.Nop())

	_, err := client.Rates(context.Background())
	assert.Error(t, err)
}

func TestCoinbaseClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewCoinbaseClientWithHTTP(srv.URL, srv.Client(), zerolog.Nop())

	_, err := client.Rates(context.Background())
	assert.Error(t, err)
}
