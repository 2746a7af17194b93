package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestComputeCompoundingFactors_TotalBenefitAlwaysClamped(t *testing.T) {
	kinds := []ActivityKind{KindExercise, KindLearning, KindWork, KindSocial, KindSleep, KindOther}
	changes := []float64{-24, -8, -2, -0.5, 0, 0.5, 2, 8, 24}
	ages := []float64{0, 18, 29, 35, 45, 55, 70, 100}
	horizons := []float64{0, 1, 10, 50, 80}
	currents := []float64{0, 1, 6, 8, 12, 24}

	for _, kind := range kinds {
		for _, change := range changes {
			for _, age := range ages {
				for _, horizon := range horizons {
					for _, current := range currents {
						factors := ComputeCompoundingFactors(kind, ExerciseGeneral, d(change), d(age), d(horizon), d(current))
						assert.True(t, factors.TotalBenefit.GreaterThanOrEqual(d(0.5)),
							"TotalBenefit below 0.5 for kind=%v change=%v age=%v horizon=%v current=%v: %s",
							kind, change, age, horizon, current, factors.TotalBenefit)
						assert.True(t, factors.TotalBenefit.LessThanOrEqual(d(2.5)),
							"TotalBenefit above 2.5 for kind=%v change=%v age=%v horizon=%v current=%v: %s",
							kind, change, age, horizon, current, factors.TotalBenefit)
					}
				}
			}
		}
	}
}

func TestComputeCompoundingFactors_ZeroChangeIsNeutral(t *testing.T) {
	for _, kind := range []ActivityKind{KindExercise, KindLearning, KindWork, KindSocial, KindSleep, KindOther} {
		factors := ComputeCompoundingFactors(kind, ExerciseGeneral, decimal.Zero, d(40), d(30), d(2))
		assert.True(t, factors.HealthMultiplier.Equal(dOne), "kind %v: health should be 1.0 with no change", kind)
		assert.True(t, factors.SkillMultiplier.Equal(dOne), "kind %v: skill should be 1.0 with no change", kind)
		assert.True(t, factors.TotalBenefit.Equal(dOne), "kind %v: total benefit should be 1.0 with no change", kind)
	}
}

func TestExerciseFactors_WeeklyMinuteTiers(t *testing.T) {
	tests := []struct {
		name          string
		currentHours  float64
		change        float64
		expectedBonus decimal.Decimal
	}{
		// (current+change)*7*60 weekly minutes.
		{"below 150 minutes", 0.1, 0.1, exerciseBuildingBonus},   // 84
		{"optimal band", 0.25, 0.25, exerciseOptimalBonus},       // 210
		{"moderate band", 0.5, 0.75, exerciseModerateBonus},      // 525
		{"beyond 600 minutes", 1.0, 0.5, exerciseExcessiveBonus}, // 630
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors := ComputeCompoundingFactors(KindExercise, ExerciseGeneral,
				d(tt.change), d(30), d(50), d(tt.currentHours))
			assert.True(t, factors.HealthMultiplier.Equal(tt.expectedBonus),
				"Expected health %s, got %s", tt.expectedBonus, factors.HealthMultiplier)
		})
	}
}

func TestExerciseFactors_TypeBonus(t *testing.T) {
	base := ComputeCompoundingFactors(KindExercise, ExerciseGeneral, d(0.5), d(30), d(40), d(0.25))
	strength := ComputeCompoundingFactors(KindExercise, ExerciseStrength, d(0.5), d(30), d(40), d(0.25))
	combined := ComputeCompoundingFactors(KindExercise, ExerciseCombined, d(0.5), d(30), d(40), d(0.25))

	assert.True(t, strength.HealthMultiplier.GreaterThan(base.HealthMultiplier),
		"Strength sub-type should add a secondary bonus")
	assert.True(t, combined.HealthMultiplier.GreaterThan(strength.HealthMultiplier),
		"Combined training should carry the largest secondary bonus")
}

func TestExerciseFactors_DecreasePenalizedMoreOverLongHorizons(t *testing.T) {
	short := ComputeCompoundingFactors(KindExercise, ExerciseGeneral, d(-0.5), d(30), d(5), d(1))
	long := ComputeCompoundingFactors(KindExercise, ExerciseGeneral, d(-0.5), d(30), d(50), d(1))

	assert.True(t, short.HealthMultiplier.LessThan(dOne), "Cutting exercise should cost health")
	assert.True(t, long.HealthMultiplier.LessThan(short.HealthMultiplier),
		"Longer horizon should compound the detriment")

	younger := ComputeCompoundingFactors(KindExercise, ExerciseGeneral, d(-0.5), d(35), d(20), d(1))
	older := ComputeCompoundingFactors(KindExercise, ExerciseGeneral, d(-0.5), d(45), d(20), d(1))
	assert.True(t, older.HealthMultiplier.LessThan(younger.HealthMultiplier),
		"Cutting exercise after 40 should carry an extra penalty")
}

func TestLearningFactor_AgeBands(t *testing.T) {
	young := ComputeCompoundingFactors(KindLearning, ExerciseGeneral, d(1), d(25), d(30), d(1))
	middle := ComputeCompoundingFactors(KindLearning, ExerciseGeneral, d(1), d(40), d(30), d(1))
	older := ComputeCompoundingFactors(KindLearning, ExerciseGeneral, d(1), d(60), d(30), d(1))

	assert.True(t, young.SkillMultiplier.GreaterThan(middle.SkillMultiplier),
		"Knowledge compounding should be strongest under 30")
	assert.True(t, middle.SkillMultiplier.GreaterThan(older.SkillMultiplier),
		"Knowledge compounding should weaken over 50")

	// Deep cuts bottom out at the skill floor.
	cut := ComputeCompoundingFactors(KindLearning, ExerciseGeneral, d(-10), d(40), d(30), d(10))
	assert.True(t, cut.SkillMultiplier.Equal(learningSkillFloor),
		"Skill multiplier should floor at %s, got %s", learningSkillFloor, cut.SkillMultiplier)
}

func TestWorkFactors(t *testing.T) {
	light := ComputeCompoundingFactors(KindWork, ExerciseGeneral, d(1), d(40), d(20), d(8))
	heavy := ComputeCompoundingFactors(KindWork, ExerciseGeneral, d(3), d(40), d(20), d(8))

	assert.True(t, light.SkillMultiplier.GreaterThan(dOne), "Up to 1h/day should favor skill")
	assert.True(t, heavy.HealthMultiplier.LessThan(light.HealthMultiplier),
		"Past 1h/day the health penalty should deepen")

	cut := ComputeCompoundingFactors(KindWork, ExerciseGeneral, d(-2), d(40), d(20), d(8))
	assert.True(t, cut.HealthMultiplier.GreaterThan(dOne), "Cutting work should restore some health")
	assert.True(t, cut.SkillMultiplier.LessThan(dOne), "Cutting work should cost some skill")

	deepCut := ComputeCompoundingFactors(KindWork, ExerciseGeneral, d(-10), d(40), d(20), d(12))
	assert.True(t, deepCut.SkillMultiplier.Equal(workSkillFloor),
		"Work skill multiplier should floor at %s", workSkillFloor)
}

func TestSocialFactor_StrongerAfter40(t *testing.T) {
	younger := ComputeCompoundingFactors(KindSocial, ExerciseGeneral, d(1), d(30), d(20), d(2))
	older := ComputeCompoundingFactors(KindSocial, ExerciseGeneral, d(1), d(50), d(20), d(2))
	assert.True(t, older.HealthMultiplier.GreaterThan(younger.HealthMultiplier),
		"Relationship value should strengthen after 40")

	deepCut := ComputeCompoundingFactors(KindSocial, ExerciseGeneral, d(-10), d(30), d(20), d(10))
	assert.True(t, deepCut.HealthMultiplier.Equal(socialHealthFloor),
		"Social health multiplier should floor at %s", socialHealthFloor)
}

func TestSleepFactor_AdjustedHoursPickTheTier(t *testing.T) {
	// 6h + 0.5h = 6.5h, still short: strongest tier of all.
	recovering := ComputeCompoundingFactors(KindSleep, ExerciseGeneral, d(0.5), d(30), d(20), d(6))
	// 7h + 1h = 8h: optimal band.
	optimal := ComputeCompoundingFactors(KindSleep, ExerciseGeneral, d(1), d(30), d(20), d(7))
	// 9h + 1h = 10h: oversleeping.
	oversleep := ComputeCompoundingFactors(KindSleep, ExerciseGeneral, d(1), d(30), d(20), d(9))

	assert.True(t, recovering.HealthMultiplier.GreaterThan(optimal.HealthMultiplier),
		"Adding sleep while under 7h should be the strongest tier")
	assert.True(t, optimal.HealthMultiplier.GreaterThan(oversleep.HealthMultiplier),
		"Beyond 9h the bonus should be the weakest")
}

func TestSleepFactor_DebtCompounding(t *testing.T) {
	// Losing 1h: recovery penalty of 4 days, debt factor 1 + 4/30.
	factors := ComputeCompoundingFactors(KindSleep, ExerciseGeneral, d(-1), d(35), d(20), d(6))
	assert.True(t, factors.HealthMultiplier.LessThan(dOne),
		"Losing sleep must reduce the health multiplier, got %s", factors.HealthMultiplier)

	// Under 40 the same cut hurts more.
	older := ComputeCompoundingFactors(KindSleep, ExerciseGeneral, d(-1), d(45), d(20), d(6))
	assert.True(t, factors.HealthMultiplier.LessThan(older.HealthMultiplier),
		"Sleep debt should carry an extra penalty under 40")

	// Larger cuts compound: -3h worse than -1h.
	deeper := ComputeCompoundingFactors(KindSleep, ExerciseGeneral, d(-3), d(35), d(20), d(8))
	assert.True(t, deeper.HealthMultiplier.LessThan(factors.HealthMultiplier),
		"Deeper sleep cuts should compound the debt penalty")
}

func TestAdjustedWeeklyMinutes(t *testing.T) {
	assert.True(t, AdjustedWeeklyMinutes(d(1), d(0.5)).Equal(d(630)),
		"1.5h/day should be 630 weekly minutes")
	assert.True(t, AdjustedWeeklyMinutes(d(0.5), d(-2)).IsZero(),
		"Negative adjusted hours floor at zero minutes")
}
