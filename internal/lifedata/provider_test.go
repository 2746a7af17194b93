package lifedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lifeExpectancyEnvelope = `[
  {"page": 1, "pages": 1, "per_page": 50, "total": 1},
  [{"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "US"}, "date": "2022", "value": 77.43}]
]`

const emptyEnvelope = `[{"page": 1, "pages": 1, "per_page": 50, "total": 0, "message": [{"id": "120"}]}]`

const countriesEnvelope = `[
  {"page": 1, "pages": 1, "per_page": 400, "total": 3},
  [
    {"id": "USA", "iso2Code": "US", "name": "United States", "region": {"value": "North America"}},
    {"id": "JPN", "iso2Code": "JP", "name": "Japan", "region": {"value": "East Asia & Pacific"}},
    {"id": "WLD", "iso2Code": "1W", "name": "World", "region": {"value": "Aggregates"}}
  ]
]`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}
	return client, server
}

func TestClient_LifeExpectancy(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/country/US/indicator/SP.DYN.LE00.IN")
		assert.Equal(t, "1", r.URL.Query().Get("mrnev"))
		w.Write([]byte(lifeExpectancyEnvelope))
	})
	defer server.Close()

	value, err := client.LifeExpectancy(context.Background(), "US")
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.NewFromFloat(77.43)))
}

func TestClient_LifeExpectancyNoData(t *testing.T) {
	t.Run("metadata-only envelope", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(emptyEnvelope))
		})
		defer server.Close()

		_, err := client.LifeExpectancy(context.Background(), "XX")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("null values", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"total": 1}, [{"date": "2022", "value": null}]]`))
		})
		defer server.Close()

		_, err := client.LifeExpectancy(context.Background(), "XX")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("server error", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer server.Close()

		_, err := client.LifeExpectancy(context.Background(), "US")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 502")
	})
}

func TestClient_Countries(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(countriesEnvelope))
	})
	defer server.Close()

	countries, err := client.Countries(context.Background())
	require.NoError(t, err)

	// The World aggregate row is filtered out.
	require.Len(t, countries, 2)
	assert.Equal(t, "US", countries[0].Code)
	assert.Equal(t, "United States", countries[0].Name)
	assert.Equal(t, "JP", countries[1].Code)
}

func TestProvider_LifeExpectancyCaches(t *testing.T) {
	var calls atomic.Int32
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(lifeExpectancyEnvelope))
	})
	defer server.Close()

	provider := NewProvider(client, NewMemoryCache(time.Hour))

	first := provider.LifeExpectancy(context.Background(), "us")
	second := provider.LifeExpectancy(context.Background(), "US")

	assert.True(t, first.Equal(decimal.NewFromFloat(77.43)))
	assert.True(t, second.Equal(first))
	assert.Equal(t, int32(1), calls.Load(), "Second lookup should hit the cache")
}

func TestProvider_LifeExpectancyFallsBack(t *testing.T) {
	t.Run("no data for country", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(emptyEnvelope))
		})
		defer server.Close()

		provider := NewProvider(client, NewMemoryCache(time.Hour))
		value := provider.LifeExpectancy(context.Background(), "JP")
		assert.True(t, value.Equal(decimal.NewFromFloat(84.7)),
			"Should use the static table when upstream has no datum")
	})

	t.Run("unreachable upstream", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		provider := NewProvider(client, NewMemoryCache(time.Hour))
		value := provider.LifeExpectancy(context.Background(), "US")
		assert.True(t, value.Equal(decimal.NewFromFloat(79.3)))
	})

	t.Run("unknown country uses global default", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(emptyEnvelope))
		})
		defer server.Close()

		provider := NewProvider(client, NewMemoryCache(time.Hour))
		value := provider.LifeExpectancy(context.Background(), "ZZ")
		assert.True(t, value.Equal(DefaultLifeExpectancy))
	})

	t.Run("empty code uses global default without a request", func(t *testing.T) {
		var calls atomic.Int32
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		})
		defer server.Close()

		provider := NewProvider(client, NewMemoryCache(time.Hour))
		value := provider.LifeExpectancy(context.Background(), "  ")
		assert.True(t, value.Equal(DefaultLifeExpectancy))
		assert.Equal(t, int32(0), calls.Load())
	})
}

func TestProvider_FallbackNotCached(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(lifeExpectancyEnvelope))
	})
	defer server.Close()

	provider := NewProvider(client, NewMemoryCache(time.Hour))

	degraded := provider.LifeExpectancy(context.Background(), "US")
	assert.True(t, degraded.Equal(decimal.NewFromFloat(79.3)))

	// Upstream recovers; the next request should prefer the live value.
	failing.Store(false)
	recovered := provider.LifeExpectancy(context.Background(), "US")
	assert.True(t, recovered.Equal(decimal.NewFromFloat(77.43)))
}

func TestProvider_CountriesCaches(t *testing.T) {
	var calls atomic.Int32
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(countriesEnvelope))
	})
	defer server.Close()

	provider := NewProvider(client, NewMemoryCache(time.Hour))

	first, err := provider.Countries(context.Background())
	require.NoError(t, err)
	second, err := provider.Countries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMemoryCache_TTL(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(time.Minute)
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Set(context.Background(), "k", "v"))

	value, ok := cache.Get(context.Background(), "k")
	require.True(t, ok)
	assert.Equal(t, "v", value)

	current = current.Add(2 * time.Minute)
	_, ok = cache.Get(context.Background(), "k")
	assert.False(t, ok, "Entry should expire after the TTL")
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryCache(0)
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Set(context.Background(), "k", "v"))
	current = current.Add(1000 * time.Hour)

	_, ok := cache.Get(context.Background(), "k")
	assert.True(t, ok)
}
