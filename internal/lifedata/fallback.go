package lifedata

import "github.com/shopspring/decimal"

// DefaultLifeExpectancy is the global average, used when neither the upstream
// source nor the fallback table knows the country.
var DefaultLifeExpectancy = decimal.NewFromFloat(73.4)

// fallbackLifeExpectancy holds rough per-country averages for codes the
// upstream indicator commonly lacks or when the API is unreachable. Values
// are years at birth, both sexes.
var fallbackLifeExpectancy = map[string]decimal.Decimal{
	"US": decimal.NewFromFloat(79.3),
	"CA": decimal.NewFromFloat(82.6),
	"GB": decimal.NewFromFloat(81.3),
	"DE": decimal.NewFromFloat(81.2),
	"FR": decimal.NewFromFloat(82.9),
	"ES": decimal.NewFromFloat(83.2),
	"IT": decimal.NewFromFloat(83.5),
	"JP": decimal.NewFromFloat(84.7),
	"KR": decimal.NewFromFloat(83.7),
	"CN": decimal.NewFromFloat(78.2),
	"IN": decimal.NewFromFloat(70.8),
	"BR": decimal.NewFromFloat(75.9),
	"MX": decimal.NewFromFloat(75.1),
	"AU": decimal.NewFromFloat(83.2),
	"NZ": decimal.NewFromFloat(82.5),
	"ZA": decimal.NewFromFloat(65.3),
	"NG": decimal.NewFromFloat(54.6),
	"EG": decimal.NewFromFloat(70.2),
	"RU": decimal.NewFromFloat(73.2),
	"TR": decimal.NewFromFloat(77.2),
}

// FallbackLifeExpectancy returns the static per-country average, or the
// global default when the code is unknown.
func FallbackLifeExpectancy(countryCode string) decimal.Decimal {
	if value, ok := fallbackLifeExpectancy[countryCode]; ok {
		return value
	}
	return DefaultLifeExpectancy
}
