package lifedata

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/lifeviz/lifeviz/internal/calculation"
	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

const countriesCacheKey = "lifedata:countries"

// Provider resolves life-expectancy values through a cache, the upstream
// client, and finally the static fallback table. LifeExpectancy never fails:
// an unreachable upstream degrades to the fallback value.
type Provider struct {
	Client *Client
	Cache  Cache
	Logger calculation.Logger
}

// NewProvider composes a provider from a client and a cache.
func NewProvider(client *Client, cache Cache) *Provider {
	return &Provider{
		Client: client,
		Cache:  cache,
		Logger: calculation.NopLogger{},
	}
}

// LifeExpectancy returns life expectancy at birth for a two-letter country
// code, preferring cache, then upstream, then the fallback table. Fallback
// values are not cached, so a recovered upstream wins on the next request.
func (p *Provider) LifeExpectancy(ctx context.Context, countryCode string) decimal.Decimal {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return DefaultLifeExpectancy
	}

	cacheKey := "lifedata:le:" + code
	if cached, ok := p.Cache.Get(ctx, cacheKey); ok {
		if value, err := decimal.NewFromString(cached); err == nil {
			return value
		}
	}

	value, err := p.Client.LifeExpectancy(ctx, code)
	if err != nil {
		if !errors.Is(err, ErrNoData) {
			p.Logger.Warnf("life expectancy fetch failed for %s: %v", code, err)
		}
		return FallbackLifeExpectancy(code)
	}

	if err := p.Cache.Set(ctx, cacheKey, value.String()); err != nil {
		p.Logger.Warnf("caching life expectancy for %s: %v", code, err)
	}
	return value
}

// Countries returns the upstream country list, cached as a JSON blob.
func (p *Provider) Countries(ctx context.Context) ([]domain.Country, error) {
	if cached, ok := p.Cache.Get(ctx, countriesCacheKey); ok {
		var countries []domain.Country
		if err := json.Unmarshal([]byte(cached), &countries); err == nil {
			return countries, nil
		}
	}

	countries, err := p.Client.Countries(ctx)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(countries); err == nil {
		if err := p.Cache.Set(ctx, countriesCacheKey, string(encoded)); err != nil {
			p.Logger.Warnf("caching country list: %v", err)
		}
	}
	return countries, nil
}
