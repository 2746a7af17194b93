package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/lifeviz/lifeviz/internal/calculation"
	"github.com/lifeviz/lifeviz/internal/domain"
)

// Model is the interactive explorer state: a profile whose activity hours the
// user nudges, with the lifetime report and trend analysis recomputed live.
type Model struct {
	engine         *calculation.Engine
	profile        *domain.Profile
	baseline       []decimal.Decimal // original hours per activity, for deltas
	lifeExpectancy decimal.Decimal

	keys keyMap
	help help.Model

	selected int
	width    int
	height   int

	report *domain.LifeReport
	trend  *domain.TrendAnalysisResult
}

// NewModel creates the explorer for a validated profile.
func NewModel(engine *calculation.Engine, profile *domain.Profile, lifeExpectancy decimal.Decimal) Model {
	baseline := make([]decimal.Decimal, len(profile.Activities))
	for i, activity := range profile.Activities {
		baseline[i] = activity.HoursPerDay
	}
	m := Model{
		engine:         engine,
		profile:        profile,
		baseline:       baseline,
		lifeExpectancy: lifeExpectancy,
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          80,
		height:         24,
	}
	m.recompute()
	return m
}

// Init is required by tea.Model; all data is local, nothing to load.
func (m Model) Init() tea.Cmd {
	return nil
}

// recompute refreshes the report, and the trend analysis for the selected
// activity relative to its baseline hours.
func (m *Model) recompute() {
	now := time.Now()
	m.report = m.engine.Summarize(m.profile, m.lifeExpectancy, now)

	m.trend = nil
	if m.selected >= 0 && m.selected < len(m.profile.Activities) {
		activity := m.profile.Activities[m.selected]
		change := activity.HoursPerDay.Sub(m.baseline[m.selected])
		if !change.IsZero() {
			currentAge := decimal.NewFromInt(int64(m.profile.Age(now)))
			// Analyze the change from the baseline allocation over the rest
			// of the expected lifetime.
			baselineActivity := activity
			baselineActivity.HoursPerDay = m.baseline[m.selected]
			result := m.engine.AnalyzeTrend(baselineActivity, change, domain.AgeRange{
				Start: currentAge,
				End:   m.lifeExpectancy,
			}, currentAge)
			m.trend = &result
		}
	}
}
