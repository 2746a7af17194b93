package calculation

import (
	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

// The compounding model is a documented heuristic, not a physiological one:
// every constant below is a policy choice. The tier breakpoints (WHO weekly
// activity minutes, 7-9h sleep band) and the [0.5, 2.5] clamp are part of the
// behavioral contract and must not drift.

var (
	dOne = decimal.NewFromInt(1)

	// TotalBenefit clamp bounds.
	minTotalBenefit = decimal.NewFromFloat(0.5)
	maxTotalBenefit = decimal.NewFromFloat(2.5)

	// Exercise: weekly-minute tiers (WHO guideline band at 150-300).
	weeklyMinutesLow     = decimal.NewFromInt(150)
	weeklyMinutesOptimal = decimal.NewFromInt(300)
	weeklyMinutesHigh    = decimal.NewFromInt(600)

	exerciseOptimalBonus    = decimal.NewFromFloat(1.15) // 150-300 min/week
	exerciseBuildingBonus   = decimal.NewFromFloat(1.10) // below 150, still improving
	exerciseModerateBonus   = decimal.NewFromFloat(1.08) // 300-600, diminishing
	exerciseExcessiveBonus  = decimal.NewFromFloat(1.03) // above 600, overtraining territory
	exerciseDetrimentRate   = decimal.NewFromFloat(0.10)
	exerciseOlderAgePenalty = decimal.NewFromFloat(0.95) // extra when cutting after 40
	detrimentHorizonDivisor = decimal.NewFromInt(50)

	strengthTypeBonus = decimal.NewFromFloat(1.04)
	aerobicTypeBonus  = decimal.NewFromFloat(1.05)
	combinedTypeBonus = decimal.NewFromFloat(1.07)

	// Learning: knowledge compounding per added daily hour, banded by age.
	learningFactorUnder30 = decimal.NewFromFloat(0.15)
	learningFactorUnder50 = decimal.NewFromFloat(0.10)
	learningFactorOver50  = decimal.NewFromFloat(0.06)
	learningLossRate      = decimal.NewFromFloat(0.08)
	learningSkillFloor    = decimal.NewFromFloat(0.7)

	// Work: skill gains flatten and health costs grow past one extra hour.
	workSkillRate        = decimal.NewFromFloat(0.08)
	workOvertimeRate     = decimal.NewFromFloat(0.03)
	workHealthCostLight  = decimal.NewFromFloat(0.02)
	workHealthCostHeavy  = decimal.NewFromFloat(0.05)
	workHealthRecovery   = decimal.NewFromFloat(0.03)
	workSkillLossRate    = decimal.NewFromFloat(0.05)
	workSkillFloor       = decimal.NewFromFloat(0.85)

	// Social: relationship value strengthens after 40.
	socialValueYounger = decimal.NewFromFloat(0.06)
	socialValueOlder   = decimal.NewFromFloat(0.09)
	socialLossRate     = decimal.NewFromFloat(0.05)
	socialHealthFloor  = decimal.NewFromFloat(0.8)

	// Sleep: adjusted absolute hours pick the tier; losing sleep compounds as
	// debt at roughly four recovery days per lost hour.
	sleepRecoveredBonus  = decimal.NewFromFloat(1.18) // under 7h and adding more
	sleepOptimalBonus    = decimal.NewFromFloat(1.12) // landing in 7-9h
	sleepOversleepBonus  = decimal.NewFromFloat(1.04) // beyond 9h
	sleepDebtRate        = decimal.NewFromFloat(0.08)
	sleepRecoveryPerHour = decimal.NewFromInt(4) // days of recovery per lost hour
	sleepDebtDivisor     = decimal.NewFromInt(30)
	sleepYoungPenalty    = decimal.NewFromFloat(0.96) // under 40
)

// ComputeCompoundingFactors derives the health and skill multipliers for a
// proposed change of changeInHours per day, given the activity's kind, the
// caller's age, the projection horizon in years, and the activity's current
// daily hours. The product of the two multipliers is clamped to [0.5, 2.5];
// the individual multipliers are not.
func ComputeCompoundingFactors(kind ActivityKind, exerciseType ExerciseType, changeInHours, currentAge, horizonYears, currentDailyHours decimal.Decimal) domain.CompoundingFactors {
	health := dOne
	skill := dOne

	switch kind {
	case KindExercise:
		health, skill = exerciseFactors(exerciseType, changeInHours, currentAge, horizonYears, currentDailyHours)
	case KindLearning:
		skill = learningFactor(changeInHours, currentAge)
	case KindWork:
		health, skill = workFactors(changeInHours)
	case KindSocial:
		health = socialFactor(changeInHours, currentAge)
	case KindSleep:
		health = sleepFactor(changeInHours, currentAge, currentDailyHours)
	}

	total := health.Mul(skill)
	total = decimal.Min(decimal.Max(total, minTotalBenefit), maxTotalBenefit)

	return domain.CompoundingFactors{
		HealthMultiplier: health,
		SkillMultiplier:  skill,
		TotalBenefit:     total,
	}
}

// AdjustedWeeklyMinutes returns the post-change weekly exercise minutes,
// floored at zero.
func AdjustedWeeklyMinutes(currentDailyHours, changeInHours decimal.Decimal) decimal.Decimal {
	adjusted := decimal.Max(currentDailyHours.Add(changeInHours), decimal.Zero)
	return adjusted.Mul(decimal.NewFromInt(7)).Mul(decimal.NewFromInt(60))
}

func exerciseFactors(exerciseType ExerciseType, change, age, horizon, currentHours decimal.Decimal) (health, skill decimal.Decimal) {
	health, skill = dOne, dOne

	if change.IsPositive() {
		weekly := AdjustedWeeklyMinutes(currentHours, change)
		switch {
		case weekly.GreaterThanOrEqual(weeklyMinutesLow) && weekly.LessThanOrEqual(weeklyMinutesOptimal):
			health = exerciseOptimalBonus
		case weekly.LessThan(weeklyMinutesLow):
			health = exerciseBuildingBonus
		case weekly.LessThanOrEqual(weeklyMinutesHigh):
			health = exerciseModerateBonus
		default:
			health = exerciseExcessiveBonus
		}

		switch exerciseType {
		case ExerciseStrength:
			health = health.Mul(strengthTypeBonus)
		case ExerciseAerobic:
			health = health.Mul(aerobicTypeBonus)
		case ExerciseCombined:
			health = health.Mul(combinedTypeBonus)
		}
		return health, skill
	}

	if change.IsNegative() {
		// Detriment grows with horizon length: lost fitness compounds over
		// decades, not weeks.
		detriment := dOne.Add(horizon.Div(detrimentHorizonDivisor))
		health = dOne.Sub(exerciseDetrimentRate.Mul(detriment))
		if age.GreaterThan(decimal.NewFromInt(40)) {
			health = health.Mul(exerciseOlderAgePenalty)
		}
	}
	return health, skill
}

func learningFactor(change, age decimal.Decimal) decimal.Decimal {
	if change.IsPositive() {
		var factor decimal.Decimal
		switch {
		case age.LessThan(decimal.NewFromInt(30)):
			factor = learningFactorUnder30
		case age.LessThan(decimal.NewFromInt(50)):
			factor = learningFactorUnder50
		default:
			factor = learningFactorOver50
		}
		return dOne.Add(change.Mul(factor))
	}
	if change.IsNegative() {
		return decimal.Max(dOne.Add(change.Mul(learningLossRate)), learningSkillFloor)
	}
	return dOne
}

func workFactors(change decimal.Decimal) (health, skill decimal.Decimal) {
	health, skill = dOne, dOne

	if change.IsPositive() {
		if change.LessThanOrEqual(dOne) {
			skill = dOne.Add(change.Mul(workSkillRate))
			health = dOne.Sub(change.Mul(workHealthCostLight))
		} else {
			// Past one extra hour per day, skill gains flatten while the
			// health cost scales with the full change.
			overtime := change.Sub(dOne)
			skill = dOne.Add(workSkillRate).Add(overtime.Mul(workOvertimeRate))
			health = dOne.Sub(change.Mul(workHealthCostHeavy))
		}
		return health, skill
	}

	if change.IsNegative() {
		magnitude := change.Abs()
		health = dOne.Add(magnitude.Mul(workHealthRecovery))
		skill = decimal.Max(dOne.Sub(magnitude.Mul(workSkillLossRate)), workSkillFloor)
	}
	return health, skill
}

func socialFactor(change, age decimal.Decimal) decimal.Decimal {
	if change.IsPositive() {
		value := socialValueYounger
		if age.GreaterThan(decimal.NewFromInt(40)) {
			value = socialValueOlder
		}
		return dOne.Add(change.Mul(value))
	}
	if change.IsNegative() {
		return decimal.Max(dOne.Add(change.Mul(socialLossRate)), socialHealthFloor)
	}
	return dOne
}

func sleepFactor(change, age, currentHours decimal.Decimal) decimal.Decimal {
	adjusted := currentHours.Add(change)

	if change.IsPositive() {
		switch {
		case adjusted.LessThan(decimal.NewFromInt(7)):
			// Still sleep-deprived but moving in the right direction; every
			// recovered hour here matters most.
			return sleepRecoveredBonus
		case adjusted.LessThanOrEqual(decimal.NewFromInt(9)):
			return sleepOptimalBonus
		default:
			return sleepOversleepBonus
		}
	}

	if change.IsNegative() {
		recoveryDays := change.Abs().Mul(sleepRecoveryPerHour)
		debt := dOne.Add(recoveryDays.Div(sleepDebtDivisor))
		health := dOne.Sub(sleepDebtRate.Mul(debt))
		if age.LessThan(decimal.NewFromInt(40)) {
			health = health.Mul(sleepYoungPenalty)
		}
		return health
	}
	return dOne
}
