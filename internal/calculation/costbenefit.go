package calculation

import (
	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

// Value-score tables for the cost-benefit analyzer. Base scores rank the
// categories; the age multipliers shift the ranking across life stages
// (exercise pays more after 40, learning compounds longest in youth, career
// investment peaks between 30 and 60, relationships gain value after 30).
var (
	baseValueScores = map[ActivityKind]decimal.Decimal{
		KindSleep:    decimal.NewFromInt(9),
		KindExercise: decimal.NewFromInt(8),
		KindLearning: decimal.NewFromInt(7),
		KindSocial:   decimal.NewFromInt(7),
		KindWork:     decimal.NewFromInt(6),
		KindOther:    decimal.NewFromInt(4),
	}

	timeValueFloor   = decimal.NewFromInt(-100)
	timeValueCeiling = decimal.NewFromInt(100)

	// Categories with a deep evidence base; verdict confidence keys off how
	// many of the two activities fall in this set.
	wellStudiedKinds = map[ActivityKind]bool{
		KindExercise: true,
		KindSleep:    true,
		KindWork:     true,
		KindLearning: true,
	}
)

var qualitativeLoss = map[ActivityKind]string{
	KindExercise: "reduced physical resilience and long-term health",
	KindLearning: "slower skill growth and fading knowledge",
	KindWork:     "lost career momentum and earning potential",
	KindSocial:   "weakened relationships and support network",
	KindSleep:    "accumulating sleep debt and degraded recovery",
	KindOther:    "less time for this pursuit",
}

var qualitativeGain = map[ActivityKind]string{
	KindExercise: "stronger health and added healthy years",
	KindLearning: "compounding knowledge and sharper skills",
	KindWork:     "career growth and financial security",
	KindSocial:   "deeper relationships and emotional wellbeing",
	KindSleep:    "better recovery and daytime performance",
	KindOther:    "more time for this pursuit",
}

// AnalyzeCostBenefit scores moving hoursToReallocate daily hours from one
// activity to another over the remaining lifetime. Zero remaining years or a
// non-positive reallocation short-circuits to the neutral low-confidence
// result; the function never fails.
func (e *Engine) AnalyzeCostBenefit(from, to domain.Activity, hoursToReallocate, currentAge, lifeExpectancy decimal.Decimal) domain.CostBenefitResult {
	remaining := decimal.Max(lifeExpectancy.Sub(currentAge), decimal.Zero)
	if remaining.IsZero() || !hoursToReallocate.IsPositive() {
		e.logger().Debugf("cost-benefit: neutral result (remaining=%s hours=%s)", remaining, hoursToReallocate)
		return neutralCostBenefitResult(from.Name, to.Name)
	}

	fromKind := ClassifyActivity(from.Name)
	toKind := ClassifyActivity(to.Name)

	// The same clock-hours leave one bucket and enter the other, so the raw
	// years moved are symmetric; only the valuation differs.
	yearsMoved := hoursToReallocate.Mul(daysPerYear).Mul(remaining).Div(domain.HoursPerYear)

	fromScore := valueScore(fromKind, currentAge)
	toScore := valueScore(toKind, currentAge)

	timeValue := toScore.Sub(fromScore).
		Mul(hoursToReallocate.Div(decimal.NewFromInt(24))).
		Mul(decimal.NewFromInt(100))
	timeValue = decimal.Min(decimal.Max(timeValue, timeValueFloor), timeValueCeiling)

	roi := decimal.NewFromInt(1)
	if fromScore.IsPositive() {
		roi = toScore.Div(fromScore).Round(2)
	}

	return domain.CostBenefitResult{
		OpportunityCost: domain.OpportunityCost{
			Activity:          from.Name,
			YearsLost:         yearsMoved,
			QualitativeImpact: qualitativeLoss[fromKind],
		},
		Benefit: domain.ReallocationBenefit{
			Activity:          to.Name,
			YearsGained:       yearsMoved,
			QualitativeImpact: qualitativeGain[toKind],
			PotentialROI:      roi,
		},
		NetImpact: domain.NetImpact{
			TimeValue:      timeValue,
			Recommendation: timeValueVerdict(timeValue),
			Confidence:     verdictConfidence(fromKind, toKind),
		},
	}
}

func neutralCostBenefitResult(fromName, toName string) domain.CostBenefitResult {
	return domain.CostBenefitResult{
		OpportunityCost: domain.OpportunityCost{
			Activity:          fromName,
			YearsLost:         decimal.Zero,
			QualitativeImpact: "no measurable impact",
		},
		Benefit: domain.ReallocationBenefit{
			Activity:          toName,
			YearsGained:       decimal.Zero,
			QualitativeImpact: "no measurable impact",
			PotentialROI:      decimal.NewFromInt(1),
		},
		NetImpact: domain.NetImpact{
			TimeValue:      decimal.Zero,
			Recommendation: "No reallocation effect within the remaining lifetime",
			Confidence:     domain.ConfidenceLow,
		},
	}
}

// valueScore modulates the category base score by an age-bracket multiplier.
func valueScore(kind ActivityKind, age decimal.Decimal) decimal.Decimal {
	score := baseValueScores[kind]
	switch kind {
	case KindExercise:
		if age.GreaterThan(decimal.NewFromInt(40)) {
			score = score.Mul(decimal.NewFromFloat(1.3))
		}
	case KindLearning:
		switch {
		case age.LessThan(decimal.NewFromInt(30)):
			score = score.Mul(decimal.NewFromFloat(1.3))
		case age.GreaterThanOrEqual(decimal.NewFromInt(50)):
			score = score.Mul(decimal.NewFromFloat(0.8))
		}
	case KindWork:
		if age.GreaterThanOrEqual(decimal.NewFromInt(30)) && age.LessThanOrEqual(decimal.NewFromInt(60)) {
			score = score.Mul(decimal.NewFromFloat(1.2))
		} else {
			score = score.Mul(decimal.NewFromFloat(0.9))
		}
	case KindSocial:
		if age.GreaterThan(decimal.NewFromInt(30)) {
			score = score.Mul(decimal.NewFromFloat(1.2))
		}
	}
	return score
}

// timeValueVerdict is a 5-bucket ladder over the bounded score.
func timeValueVerdict(timeValue decimal.Decimal) string {
	switch {
	case timeValue.GreaterThan(decimal.NewFromInt(50)):
		return "Strongly recommended: this reallocation is a clear net gain at your age"
	case timeValue.GreaterThan(decimal.NewFromInt(20)):
		return "Recommended: the target activity is worth more of your time right now"
	case timeValue.GreaterThan(decimal.NewFromInt(-20)):
		return "Roughly neutral: reallocate based on preference, not expected benefit"
	case timeValue.GreaterThan(decimal.NewFromInt(-50)):
		return "Questionable: the activity losing hours is currently the more valuable one"
	default:
		return "Not recommended: this move trades high-value time for low-value time"
	}
}

func verdictConfidence(fromKind, toKind ActivityKind) string {
	studied := 0
	if wellStudiedKinds[fromKind] {
		studied++
	}
	if wellStudiedKinds[toKind] {
		studied++
	}
	switch studied {
	case 2:
		return domain.ConfidenceHigh
	case 1:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
