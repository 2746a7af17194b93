package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProfileParser_LoadFromFile(t *testing.T) {
	parser := NewProfileParser()

	path := writeTempProfile(t, `
name: "Test Person"
birth_date: 1990-05-15T00:00:00Z
country_code: "US"
activities:
  - name: "Sleep"
    hours_per_day: 8
  - name: "Work"
    hours_per_day: 8
    days_per_week: 5
  - name: "Exercise"
    hours_per_day: 1.5
`)

	profile, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Person", profile.Name)
	assert.Equal(t, "US", profile.CountryCode)
	assert.Equal(t, 1990, profile.BirthDate.Year())
	require.Len(t, profile.Activities, 3)

	work := profile.Activities[1]
	assert.Equal(t, 5, work.DaysPerWeek)
	assert.True(t, work.HoursPerDay.Equal(decimal.NewFromInt(8)))
}

func TestProfileParser_LoadFromFileErrors(t *testing.T) {
	parser := NewProfileParser()

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTempProfile(t, "name: [unclosed")
		_, err := parser.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("invalid profile", func(t *testing.T) {
		path := writeTempProfile(t, `
name: "No Activities"
birth_date: 1990-05-15T00:00:00Z
activities: []
`)
		_, err := parser.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "profile validation failed")
	})
}

func TestProfileParser_ValidateProfile(t *testing.T) {
	parser := NewProfileParser()
	le := decimal.NewFromInt(-1)

	valid := func() *domain.Profile {
		return &domain.Profile{
			Name:      "ok",
			BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
			Activities: []domain.Activity{
				{Name: "Sleep", HoursPerDay: decimal.NewFromInt(8)},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Profile)
		wantErr string
	}{
		{
			name:   "valid profile",
			mutate: func(p *domain.Profile) {},
		},
		{
			name:    "missing birth date",
			mutate:  func(p *domain.Profile) { p.BirthDate = time.Time{} },
			wantErr: "birth date is required",
		},
		{
			name:    "future birth date",
			mutate:  func(p *domain.Profile) { p.BirthDate = time.Now().AddDate(1, 0, 0) },
			wantErr: "birth date cannot be in the future",
		},
		{
			name:    "bad country code",
			mutate:  func(p *domain.Profile) { p.CountryCode = "USA" },
			wantErr: "two-letter ISO code",
		},
		{
			name:    "non-positive life expectancy override",
			mutate:  func(p *domain.Profile) { p.LifeExpectancy = &le },
			wantErr: "must be positive",
		},
		{
			name:    "no activities",
			mutate:  func(p *domain.Profile) { p.Activities = nil },
			wantErr: "at least one activity",
		},
		{
			name: "unnamed activity",
			mutate: func(p *domain.Profile) {
				p.Activities[0].Name = ""
			},
			wantErr: "name is required",
		},
		{
			name: "negative hours",
			mutate: func(p *domain.Profile) {
				p.Activities[0].HoursPerDay = decimal.NewFromInt(-1)
			},
			wantErr: "cannot be negative",
		},
		{
			name: "hours above 24",
			mutate: func(p *domain.Profile) {
				p.Activities[0].HoursPerDay = decimal.NewFromInt(25)
			},
			wantErr: "cannot exceed 24",
		},
		{
			name: "bad days per week",
			mutate: func(p *domain.Profile) {
				p.Activities[0].DaysPerWeek = 8
			},
			wantErr: "days per week",
		},
		{
			name: "total over 24 hours",
			mutate: func(p *domain.Profile) {
				p.Activities = append(p.Activities,
					domain.Activity{Name: "Work", HoursPerDay: decimal.NewFromInt(10)},
					domain.Activity{Name: "Social", HoursPerDay: decimal.NewFromInt(10)},
				)
			},
			wantErr: "exceeding 24",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := valid()
			tt.mutate(profile)
			err := parser.ValidateProfile(profile)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfileParser_WeeklyScheduleWithinDailyBudget(t *testing.T) {
	parser := NewProfileParser()

	// 12h on 5 days averages to under 9 effective hours; the daily cap
	// applies to the effective figure, not the peak day.
	profile := &domain.Profile{
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Activities: []domain.Activity{
			{Name: "Work", HoursPerDay: decimal.NewFromInt(12), DaysPerWeek: 5},
			{Name: "Sleep", HoursPerDay: decimal.NewFromInt(8)},
			{Name: "Social", HoursPerDay: decimal.NewFromInt(6)},
		},
	}
	assert.NoError(t, parser.ValidateProfile(profile))
}
