package lifedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the World Bank v2 API root.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// lifeExpectancyIndicator is total life expectancy at birth, in years.
const lifeExpectancyIndicator = "SP.DYN.LE00.IN"

// ErrNoData reports that the upstream source has no datum for a country; the
// provider falls back to the static table on this error.
var ErrNoData = fmt.Errorf("lifedata: no data for country")

// Client fetches country lists and life-expectancy values from the World
// Bank API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client against the public World Bank API.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// worldBankCountry is the subset of the country payload we read. Aggregates
// (regions, income groups) carry "Aggregates" as their region value and are
// filtered out.
type worldBankCountry struct {
	ISO2Code string `json:"iso2Code"`
	Name     string `json:"name"`
	Region   struct {
		Value string `json:"value"`
	} `json:"region"`
}

type worldBankIndicatorRow struct {
	Value *float64 `json:"value"`
	Date  string   `json:"date"`
}

// Countries returns the upstream country list as {code, name} pairs, sorted
// as the API returns them, with aggregate rows removed.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	endpoint := fmt.Sprintf("%s/country?format=json&per_page=400", c.BaseURL)
	var rows []worldBankCountry
	if err := c.getJSON(ctx, endpoint, &rows); err != nil {
		return nil, fmt.Errorf("fetching country list: %w", err)
	}

	countries := make([]domain.Country, 0, len(rows))
	for _, row := range rows {
		if row.Region.Value == "Aggregates" || row.ISO2Code == "" {
			continue
		}
		countries = append(countries, domain.Country{Code: row.ISO2Code, Name: row.Name})
	}
	return countries, nil
}

// LifeExpectancy returns the most recent life expectancy at birth for a
// country code, or ErrNoData when the indicator has no value for it.
func (c *Client) LifeExpectancy(ctx context.Context, countryCode string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&mrnev=1",
		c.BaseURL, url.PathEscape(countryCode), lifeExpectancyIndicator)

	var rows []worldBankIndicatorRow
	if err := c.getJSON(ctx, endpoint, &rows); err != nil {
		return decimal.Zero, fmt.Errorf("fetching life expectancy for %s: %w", countryCode, err)
	}
	for _, row := range rows {
		if row.Value != nil {
			return decimal.NewFromFloat(*row.Value), nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w %s", ErrNoData, countryCode)
}

// getJSON fetches a World Bank envelope, which is a two-element array of
// [metadata, rows], and decodes the rows element into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decoding envelope: %w", err)
	}
	if len(envelope) < 2 {
		// The API signals "no rows" with a metadata-only envelope.
		return ErrNoData
	}
	if err := json.Unmarshal(envelope[1], out); err != nil {
		return fmt.Errorf("decoding rows: %w", err)
	}
	return nil
}
