package calculation

import (
	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

const maxRecommendations = 3

var daysPerYear = decimal.NewFromInt(365)

// AnalyzeTrend reports the net effect, in years over the age range, of
// changing an activity's daily hours by changeInHours. The range is clamped
// so it starts no earlier than currentAge and never ends before it starts; a
// zero-length horizon yields the neutral zero-effect result instead of a
// division by zero.
func (e *Engine) AnalyzeTrend(activity domain.Activity, changeInHours decimal.Decimal, ageRange domain.AgeRange, currentAge decimal.Decimal) domain.TrendAnalysisResult {
	normalized := ageRange.Normalize(currentAge)
	horizon := normalized.Horizon()
	if !horizon.IsPositive() {
		e.logger().Debugf("trend: empty horizon for %q after normalization, returning neutral result", activity.Name)
		return neutralTrendResult()
	}

	kind := ClassifyActivity(activity.Name)
	exerciseType := ExerciseGeneral
	if kind == KindExercise {
		exerciseType = ClassifyExercise(activity.Name)
	}

	factors := ComputeCompoundingFactors(kind, exerciseType, changeInHours, currentAge, horizon, activity.HoursPerDay)

	horizonDays := horizon.Mul(daysPerYear)
	originalYears := domain.ActivityYears(activity.HoursPerDay, horizonDays)
	modifiedHours := decimal.Max(activity.HoursPerDay.Add(changeInHours), decimal.Zero)
	modifiedYears := domain.ActivityYears(modifiedHours, horizonDays).Mul(factors.TotalBenefit)

	compoundEffect := modifiedYears.Sub(originalYears)
	yearlyImpact := compoundEffect.Div(horizon)

	candidates := recommendationCandidates(kind, changeInHours, activity.HoursPerDay)
	recommendations := e.selector().Select(candidates, maxRecommendations)

	return domain.TrendAnalysisResult{
		OriginalYears:      originalYears,
		ModifiedYears:      modifiedYears,
		CompoundEffect:     compoundEffect,
		YearlyImpact:       yearlyImpact,
		Recommendations:    recommendations,
		CompoundingFactors: factors,
	}
}

func neutralTrendResult() domain.TrendAnalysisResult {
	return domain.TrendAnalysisResult{
		OriginalYears:      decimal.Zero,
		ModifiedYears:      decimal.Zero,
		CompoundEffect:     decimal.Zero,
		YearlyImpact:       decimal.Zero,
		Recommendations:    []string{},
		CompoundingFactors: domain.NeutralCompoundingFactors(),
	}
}

// recommendationCandidates builds the priority-ordered message list for the
// activity's category. Exercise tips key off post-change weekly minutes,
// sleep tips off post-change absolute hours; other categories only off the
// direction of the change.
func recommendationCandidates(kind ActivityKind, change, currentHours decimal.Decimal) []string {
	increasing := change.IsPositive()

	switch kind {
	case KindExercise:
		weekly := AdjustedWeeklyMinutes(currentHours, change)
		return exerciseRecommendations(increasing, weekly)
	case KindSleep:
		adjusted := currentHours.Add(change)
		return sleepRecommendations(increasing, change, adjusted)
	case KindLearning:
		if increasing {
			return []string{
				"Daily study compounds: knowledge gained now multiplies the value of everything learned later",
				"Spaced, consistent sessions beat occasional marathons for retention",
				"Pair new material with practice to convert study hours into durable skill",
			}
		}
		return []string{
			"Cutting learning time erodes skills slowly but steadily; keep at least a short daily session",
			"Skills decay without reinforcement; schedule periodic refreshers for what matters most",
		}
	case KindWork:
		if increasing {
			return []string{
				"Up to one extra hour a day builds career capital; beyond that the health cost compounds faster than the skill gain",
				"Protect recovery time: sustained overtime erodes the health that funds future earning years",
				"Direct added hours at deliberate skill-building rather than just more throughput",
			}
		}
		return []string{
			"Reduced work hours recover health but let career skills drift; invest some freed time in learning",
			"Shorter work days are sustainable when the remaining hours are sharply focused",
		}
	case KindSocial:
		if increasing {
			return []string{
				"Strong relationships are one of the best-documented predictors of healthy aging",
				"Regular time with family and friends pays off most in the second half of life",
			}
		}
		return []string{
			"Cutting social time saves hours now at a measurable long-term health cost",
			"Relationships need maintenance hours; schedule them before the calendar fills",
		}
	default:
		if increasing {
			return []string{
				"More time on this activity is a lifestyle choice; its long-term effect is neutral in this model",
			}
		}
		return []string{
			"Freed hours only pay off if they move to a higher-value category",
		}
	}
}

func exerciseRecommendations(increasing bool, weeklyMinutes decimal.Decimal) []string {
	if !increasing {
		return []string{
			"Cutting exercise compounds over long horizons; protect at least 150 weekly minutes of activity",
			"Fitness lost in midlife is much harder to rebuild after 40; keep a maintenance baseline",
			"Even two short sessions a week preserve most of the mortality benefit of regular exercise",
		}
	}
	switch {
	case weeklyMinutes.LessThan(weeklyMinutesLow):
		return []string{
			"Good start: build toward the recommended 150 weekly minutes of moderate activity",
			"Short daily sessions beat one long weekend workout for habit formation",
		}
	case weeklyMinutes.LessThanOrEqual(weeklyMinutesOptimal):
		return []string{
			"You are in the optimal 150-300 weekly minute range; consistency now matters more than volume",
			"Mix aerobic work with two strength sessions a week for the broadest benefit",
		}
	case weeklyMinutes.LessThanOrEqual(weeklyMinutesHigh):
		return []string{
			"Solid training volume; prioritize sleep and recovery quality to keep the gains",
			"Above 300 weekly minutes, added benefit per minute shrinks; vary intensity instead of adding time",
		}
	default:
		return []string{
			"Diminishing returns risk: above 600 weekly minutes, extra training adds little and injury risk climbs",
			"Consider trading some training volume for recovery or another high-value activity",
		}
	}
}

func sleepRecommendations(increasing bool, change, adjustedHours decimal.Decimal) []string {
	if !increasing && change.IsNegative() {
		return []string{
			"Each hour of lost sleep takes roughly four days to fully recover from; chronic sleep debt compounds",
			"Short sleep quietly taxes every other activity: learning, training, and work all degrade first",
			"Protect a consistent sleep window before optimizing anything else in the schedule",
		}
	}
	switch {
	case adjustedHours.LessThan(decimal.NewFromInt(7)):
		return []string{
			"Still under 7 hours: every additional hour of sleep here buys outsized health returns",
			"Move bedtime earlier in small steps; wake time consistency matters as much as duration",
		}
	case adjustedHours.LessThanOrEqual(decimal.NewFromInt(9)):
		return []string{
			"7-9 hours is the optimal band; guard it against schedule creep",
			"Quality now beats quantity: regular timing deepens the benefit of the same hours",
		}
	default:
		return []string{
			"More than 9 hours adds little for most adults; persistent long sleep is worth discussing with a doctor",
			"Consider whether extra time in bed is masking poor sleep quality",
		}
	}
}
