package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompoundingFactors scale a linear time projection for the non-linear
// health and skill effects of a sustained behavior change. The individual
// multipliers may leave the [0.5, 2.5] band; their product never does.
type CompoundingFactors struct {
	HealthMultiplier decimal.Decimal `json:"health_multiplier"`
	SkillMultiplier  decimal.Decimal `json:"skill_multiplier"`
	TotalBenefit     decimal.Decimal `json:"total_benefit"`
}

// NeutralCompoundingFactors returns the no-effect factor set.
func NeutralCompoundingFactors() CompoundingFactors {
	one := decimal.NewFromInt(1)
	return CompoundingFactors{HealthMultiplier: one, SkillMultiplier: one, TotalBenefit: one}
}

// TrendAnalysisResult reports the net effect, in years over the horizon, of a
// hypothetical daily-hour change.
type TrendAnalysisResult struct {
	OriginalYears      decimal.Decimal    `json:"original_years"`
	ModifiedYears      decimal.Decimal    `json:"modified_years"`
	CompoundEffect     decimal.Decimal    `json:"compound_effect"`
	YearlyImpact       decimal.Decimal    `json:"yearly_impact"`
	Recommendations    []string           `json:"recommendations"`
	CompoundingFactors CompoundingFactors `json:"compounding_factors"`
}

// OpportunityCost describes what is given up when hours move away from an
// activity.
type OpportunityCost struct {
	Activity          string          `json:"activity"`
	YearsLost         decimal.Decimal `json:"years_lost"`
	QualitativeImpact string          `json:"qualitative_impact"`
}

// ReallocationBenefit describes what is gained by the receiving activity.
type ReallocationBenefit struct {
	Activity          string          `json:"activity"`
	YearsGained       decimal.Decimal `json:"years_gained"`
	QualitativeImpact string          `json:"qualitative_impact"`
	PotentialROI      decimal.Decimal `json:"potential_roi"`
}

// NetImpact summarizes a reallocation with a bounded score and a verdict.
type NetImpact struct {
	TimeValue      decimal.Decimal `json:"time_value"`
	Recommendation string          `json:"recommendation"`
	Confidence     string          `json:"confidence"`
}

// Confidence levels for cost-benefit verdicts.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// CostBenefitResult scores moving a fixed number of daily hours from one
// activity to another.
type CostBenefitResult struct {
	OpportunityCost OpportunityCost     `json:"opportunity_cost"`
	Benefit         ReallocationBenefit `json:"benefit"`
	NetImpact       NetImpact           `json:"net_impact"`
}

// PhaseRecommendation is one row of the static life-phase table: a phase
// label with its suggested daily-hour allocation and focus areas.
type PhaseRecommendation struct {
	Phase          string                     `json:"phase"`
	AgeBracket     string                     `json:"age_bracket"`
	SuggestedHours map[string]decimal.Decimal `json:"suggested_hours"`
	FocusAreas     []string                   `json:"focus_areas"`
}

// TransitionPlanning describes the move into the next age bracket.
type TransitionPlanning struct {
	NextPhase        string          `json:"next_phase"`
	TimeToTransition decimal.Decimal `json:"time_to_transition"`
	PreparationSteps []string        `json:"preparation_steps"`
}

// LifePhaseResult bundles the current phase with the full recommendation
// table and the transition plan.
type LifePhaseResult struct {
	CurrentPhase       string                `json:"current_phase"`
	Recommendations    []PhaseRecommendation `json:"recommendations"`
	TransitionPlanning TransitionPlanning    `json:"transition_planning"`
}

// LifeReportItem is one activity's share of a lifetime.
type LifeReportItem struct {
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	HoursPerDay    decimal.Decimal `json:"hours_per_day"`
	YearsSpent     decimal.Decimal `json:"years_spent"`
	YearsProjected decimal.Decimal `json:"years_projected"`
	PercentOfLife  decimal.Decimal `json:"percent_of_life"`
}

// LifeReport summarizes how a lifetime divides across the profile's
// activities, both elapsed and projected.
type LifeReport struct {
	GeneratedAt    time.Time        `json:"generated_at"`
	ProfileName    string           `json:"profile_name"`
	Age            int              `json:"age"`
	LifeExpectancy decimal.Decimal  `json:"life_expectancy"`
	RemainingYears decimal.Decimal  `json:"remaining_years"`
	Items          []LifeReportItem `json:"items"`
}
