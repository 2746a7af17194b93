package config

import (
	"fmt"
	"os"
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var maxDailyHours = decimal.NewFromInt(24)

// ProfileParser handles parsing of profile input files.
type ProfileParser struct{}

// NewProfileParser creates a new profile parser.
func NewProfileParser() *ProfileParser {
	return &ProfileParser{}
}

// LoadFromFile loads a profile from a YAML file.
func (pp *ProfileParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := pp.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates a loaded profile.
func (pp *ProfileParser) ValidateProfile(profile *domain.Profile) error {
	if profile.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if profile.BirthDate.After(time.Now()) {
		return fmt.Errorf("birth date cannot be in the future")
	}
	if profile.CountryCode != "" && len(profile.CountryCode) != 2 {
		return fmt.Errorf("country code must be a two-letter ISO code, got %q", profile.CountryCode)
	}
	if profile.LifeExpectancy != nil && profile.LifeExpectancy.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("life expectancy override must be positive")
	}
	if len(profile.Activities) == 0 {
		return fmt.Errorf("at least one activity is required")
	}

	total := decimal.Zero
	for i, activity := range profile.Activities {
		if err := pp.validateActivity(&activity); err != nil {
			return fmt.Errorf("activity %d (%s) validation failed: %w", i, activity.Name, err)
		}
		total = total.Add(activity.EffectiveDailyHours())
	}
	if total.GreaterThan(maxDailyHours) {
		return fmt.Errorf("activities total %s effective hours per day, exceeding 24", total.StringFixed(1))
	}

	return nil
}

func (pp *ProfileParser) validateActivity(activity *domain.Activity) error {
	if activity.Name == "" {
		return fmt.Errorf("name is required")
	}
	if activity.HoursPerDay.IsNegative() {
		return fmt.Errorf("hours per day cannot be negative")
	}
	if activity.HoursPerDay.GreaterThan(maxDailyHours) {
		return fmt.Errorf("hours per day cannot exceed 24")
	}
	if activity.DaysPerWeek < 0 || activity.DaysPerWeek > 7 {
		return fmt.Errorf("days per week must be between 1 and 7")
	}
	return nil
}
