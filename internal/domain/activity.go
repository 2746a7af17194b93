package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HoursPerYear is the fixed divisor used when converting daily hours into
// lifetime years. It deliberately ignores leap years; the threshold constants
// in the calculation package are calibrated against this convention, so do
// not "fix" it to 8766.
var HoursPerYear = decimal.NewFromInt(8760)

// Activity represents one category of daily time use.
type Activity struct {
	Name        string          `yaml:"name" json:"name"`
	HoursPerDay decimal.Decimal `yaml:"hours_per_day" json:"hours_per_day"`
	DaysPerWeek int             `yaml:"days_per_week,omitempty" json:"days_per_week,omitempty"`
}

// EffectiveDailyHours averages the weekly schedule over seven days. An unset
// DaysPerWeek means the activity happens every day.
func (a Activity) EffectiveDailyHours() decimal.Decimal {
	days := a.DaysPerWeek
	if days <= 0 || days > 7 {
		days = 7
	}
	return a.HoursPerDay.Mul(decimal.NewFromInt(int64(days))).Div(decimal.NewFromInt(7))
}

// AgeRange is the projection window, in years of age.
type AgeRange struct {
	Start decimal.Decimal `yaml:"start" json:"start"`
	End   decimal.Decimal `yaml:"end" json:"end"`
}

// Normalize clamps the range so it never starts before the current age and
// never ends before it starts. The returned horizon may still be zero; callers
// short-circuit to a neutral result in that case rather than divide by it.
func (r AgeRange) Normalize(currentAge decimal.Decimal) AgeRange {
	start := decimal.Max(r.Start, currentAge)
	end := decimal.Max(start, r.End)
	return AgeRange{Start: start, End: end}
}

// Horizon returns the number of years covered by the range.
func (r AgeRange) Horizon() decimal.Decimal {
	return r.End.Sub(r.Start)
}

// Profile is the input document describing a person and their daily time use.
type Profile struct {
	Name           string           `yaml:"name" json:"name"`
	BirthDate      time.Time        `yaml:"birth_date" json:"birth_date"`
	CountryCode    string           `yaml:"country_code" json:"country_code"`
	LifeExpectancy *decimal.Decimal `yaml:"life_expectancy,omitempty" json:"life_expectancy,omitempty"`
	Activities     []Activity       `yaml:"activities" json:"activities"`
}

// Age calculates the calendar-correct age at a given date.
func (p *Profile) Age(atDate time.Time) int {
	return Age(p.BirthDate, atDate)
}

// Age returns the whole-year age at atDate, decrementing when the month/day
// has not yet come around.
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.YearDay() < birthDate.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// AliveDays returns the number of days elapsed since birth, fractional.
func AliveDays(birthDate, atDate time.Time) decimal.Decimal {
	hours := atDate.Sub(birthDate).Hours()
	if hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours / 24)
}

// ActivityYears converts a daily-hours allocation sustained over aliveDays
// into whole years of lifetime spent on the activity.
func ActivityYears(dailyHours, aliveDays decimal.Decimal) decimal.Decimal {
	if dailyHours.IsNegative() || aliveDays.IsNegative() {
		return decimal.Zero
	}
	return dailyHours.Mul(aliveDays).Div(HoursPerYear)
}

// RemainingYears returns the years left until lifeExpectancy, never negative.
func RemainingYears(birthDate time.Time, lifeExpectancy decimal.Decimal, atDate time.Time) decimal.Decimal {
	remaining := lifeExpectancy.Sub(decimal.NewFromInt(int64(Age(birthDate, atDate))))
	return decimal.Max(remaining, decimal.Zero)
}
