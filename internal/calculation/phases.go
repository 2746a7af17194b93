package calculation

import (
	"github.com/lifeviz/lifeviz/internal/domain"
	"github.com/shopspring/decimal"
)

// phaseDefinition is one row of the static life-phase table. MaxAge is the
// exclusive upper bound of the bracket; the final row has no bound.
type phaseDefinition struct {
	Label            string
	AgeBracket       string
	MaxAge           int
	SuggestedHours   map[string]decimal.Decimal
	FocusAreas       []string
	PreparationSteps []string
}

func hours(h float64) decimal.Decimal { return decimal.NewFromFloat(h) }

var phaseTable = []phaseDefinition{
	{
		Label:      "Exploration & Foundation",
		AgeBracket: "under 25",
		MaxAge:     25,
		SuggestedHours: map[string]decimal.Decimal{
			"sleep": hours(8), "learning": hours(4), "work": hours(6),
			"exercise": hours(1.5), "social": hours(2.5), "leisure": hours(1.5),
		},
		FocusAreas: []string{
			"skill acquisition", "health habits", "broad experimentation",
		},
		PreparationSteps: []string{
			"Pick one or two skills to deepen beyond hobby level",
			"Establish the exercise and sleep routines that will carry forward",
			"Start a savings habit, however small",
		},
	},
	{
		Label:      "Career Building",
		AgeBracket: "25-34",
		MaxAge:     35,
		SuggestedHours: map[string]decimal.Decimal{
			"sleep": hours(7.5), "learning": hours(2), "work": hours(8.5),
			"exercise": hours(1), "social": hours(2.5), "leisure": hours(1.5),
		},
		FocusAreas: []string{
			"career momentum", "key relationships", "financial base",
		},
		PreparationSteps: []string{
			"Convert early experimentation into a clear professional direction",
			"Protect exercise time as work expands to fill the calendar",
			"Decide deliberately about family and where to live",
		},
	},
	{
		Label:      "Peak Performance & Family",
		AgeBracket: "35-44",
		MaxAge:     45,
		SuggestedHours: map[string]decimal.Decimal{
			"sleep": hours(7.5), "learning": hours(1.5), "work": hours(8),
			"exercise": hours(1), "social": hours(3), "leisure": hours(2),
		},
		FocusAreas: []string{
			"family time", "sustainable work pace", "health maintenance",
		},
		PreparationSteps: []string{
			"Shift exercise from performance to durability",
			"Build mentoring and delegation into the working week",
			"Review whether time allocation still matches stated priorities",
		},
	},
	{
		Label:      "Mastery & Mentorship",
		AgeBracket: "45-54",
		MaxAge:     55,
		SuggestedHours: map[string]decimal.Decimal{
			"sleep": hours(7.5), "learning": hours(1.5), "work": hours(7.5),
			"exercise": hours(1.25), "social": hours(3), "leisure": hours(2.25),
		},
		FocusAreas: []string{
			"mentorship", "preventive health", "second-half planning",
		},
		PreparationSteps: []string{
			"Increase strength work; muscle preserved now is independence later",
			"Begin sketching what a post-career week should look like",
			"Deepen the friendships that will outlast the job",
		},
	},
	{
		Label:      "Pre-Retirement Transition",
		AgeBracket: "55-64",
		MaxAge:     65,
		SuggestedHours: map[string]decimal.Decimal{
			"sleep": hours(8), "learning": hours(2), "work": hours(6.5),
			"exercise": hours(1.5), "social": hours(3), "leisure": hours(3),
		},
		FocusAreas: []string{
			"health investment", "purpose beyond work", "knowledge transfer",
		},
		PreparationSteps: []string{
			"Pilot retirement activities while still working",
			"Front-load health screenings and mobility work",
			"Hand over what only you know before it becomes urgent",
		},
	},
	{
		Label:      "Legacy & Wellness",
		AgeBracket: "65 and over",
		MaxAge:     0, // open-ended
		SuggestedHours: map[string]decimal.Decimal{
			"sleep": hours(8), "learning": hours(2), "work": hours(2),
			"exercise": hours(1.5), "social": hours(4), "leisure": hours(4.5),
		},
		FocusAreas: []string{
			"daily movement", "community", "meaning and legacy",
		},
		PreparationSteps: []string{
			"Keep a daily reason to leave the house",
			"Treat balance and strength training as non-negotiable",
			"Tell the stories; write down what should not be lost",
		},
	},
}

// DeterminePhase maps an age to its bracket label.
func DeterminePhase(age decimal.Decimal) string {
	return phaseForAge(age).Label
}

func phaseForAge(age decimal.Decimal) phaseDefinition {
	for _, phase := range phaseTable[:len(phaseTable)-1] {
		if age.LessThan(decimal.NewFromInt(int64(phase.MaxAge))) {
			return phase
		}
	}
	return phaseTable[len(phaseTable)-1]
}

// LifePhase returns the current phase, the full six-row recommendation table,
// and the transition plan into the next bracket. A lifeExpectancy below
// currentAge is clamped up; there are no error states.
func (e *Engine) LifePhase(currentAge, lifeExpectancy decimal.Decimal) domain.LifePhaseResult {
	lifeExpectancy = decimal.Max(lifeExpectancy, currentAge)
	current := phaseForAge(currentAge)

	recommendations := make([]domain.PhaseRecommendation, 0, len(phaseTable))
	for _, phase := range phaseTable {
		recommendations = append(recommendations, domain.PhaseRecommendation{
			Phase:          phase.Label,
			AgeBracket:     phase.AgeBracket,
			SuggestedHours: phase.SuggestedHours,
			FocusAreas:     phase.FocusAreas,
		})
	}

	return domain.LifePhaseResult{
		CurrentPhase:       current.Label,
		Recommendations:    recommendations,
		TransitionPlanning: transitionPlanning(currentAge, current),
	}
}

func transitionPlanning(currentAge decimal.Decimal, current phaseDefinition) domain.TransitionPlanning {
	planning := domain.TransitionPlanning{
		NextPhase:        current.Label,
		TimeToTransition: decimal.Zero,
		PreparationSteps: current.PreparationSteps,
	}
	if current.MaxAge == 0 {
		// Final bracket: nothing to transition into.
		return planning
	}
	next := phaseForAge(decimal.NewFromInt(int64(current.MaxAge)))
	planning.NextPhase = next.Label
	planning.TimeToTransition = decimal.Max(
		decimal.NewFromInt(int64(current.MaxAge)).Sub(currentAge),
		decimal.Zero,
	)
	return planning
}
