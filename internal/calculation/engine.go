package calculation

import (
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine is the calculation facade. It holds no per-request state; a single
// Engine may be shared across concurrent callers.
type Engine struct {
	Selector Selector
	Logger   Logger
}

// NewEngine creates an engine with the deterministic selector and a no-op
// logger.
func NewEngine() *Engine {
	return &Engine{
		Selector: FixedSelector{},
		Logger:   NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Summarize builds the lifetime report for a profile: per activity, the years
// already spent and the years still to come at the current allocation.
func (e *Engine) Summarize(profile *domain.Profile, lifeExpectancy decimal.Decimal, now time.Time) *domain.LifeReport {
	age := profile.Age(now)
	lifeExpectancy = decimal.Max(lifeExpectancy, decimal.NewFromInt(int64(age)))
	aliveDays := domain.AliveDays(profile.BirthDate, now)
	remaining := domain.RemainingYears(profile.BirthDate, lifeExpectancy, now)
	remainingDays := remaining.Mul(decimal.NewFromInt(365))

	report := &domain.LifeReport{
		GeneratedAt:    now,
		ProfileName:    profile.Name,
		Age:            age,
		LifeExpectancy: lifeExpectancy,
		RemainingYears: remaining,
		Items:          make([]domain.LifeReportItem, 0, len(profile.Activities)),
	}

	hundred := decimal.NewFromInt(100)
	for _, activity := range profile.Activities {
		daily := activity.EffectiveDailyHours()
		spent := domain.ActivityYears(daily, aliveDays)
		projected := domain.ActivityYears(daily, remainingDays)

		percent := decimal.Zero
		if lifeExpectancy.IsPositive() {
			percent = spent.Add(projected).Div(lifeExpectancy).Mul(hundred)
		}

		report.Items = append(report.Items, domain.LifeReportItem{
			Name:           activity.Name,
			Kind:           ClassifyActivity(activity.Name).String(),
			HoursPerDay:    activity.HoursPerDay,
			YearsSpent:     spent,
			YearsProjected: projected,
			PercentOfLife:  percent,
		})
	}
	return report
}

func (e *Engine) selector() Selector {
	if e.Selector == nil {
		return FixedSelector{}
	}
	return e.Selector
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}
