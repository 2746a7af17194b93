package calculation

import "strings"

// ActivityKind is the category an activity name resolves to. Classification
// happens once per analysis; downstream multiplier and scoring tables key off
// the kind instead of re-matching substrings.
type ActivityKind int

const (
	KindOther ActivityKind = iota
	KindExercise
	KindLearning
	KindWork
	KindSocial
	KindSleep
)

func (k ActivityKind) String() string {
	switch k {
	case KindExercise:
		return "exercise"
	case KindLearning:
		return "learning"
	case KindWork:
		return "work"
	case KindSocial:
		return "social"
	case KindSleep:
		return "sleep"
	default:
		return "other"
	}
}

// ExerciseType sub-classifies exercise activities for the secondary
// multiplier.
type ExerciseType int

const (
	ExerciseGeneral ExerciseType = iota
	ExerciseStrength
	ExerciseAerobic
	ExerciseCombined
)

func (t ExerciseType) String() string {
	switch t {
	case ExerciseStrength:
		return "strength"
	case ExerciseAerobic:
		return "aerobic"
	case ExerciseCombined:
		return "combined"
	default:
		return "general"
	}
}

// Keyword groups, evaluated in priority order: the first group with a match
// wins. Keep the order stable; "Strength Training" must land on exercise, not
// fall through to a later group.
var (
	exerciseKeywords = []string{
		"exercise", "fitness", "workout", "gym", "training", "sport",
		"run", "jog", "swim", "cycling", "cardio", "aerobic", "strength",
		"lifting", "yoga", "walk",
	}
	learningKeywords = []string{
		"learn", "study", "read", "course", "education", "practice", "skill",
	}
	workKeywords = []string{
		"work", "career", "job", "office", "business",
	}
	socialKeywords = []string{
		"social", "family", "friend", "relationship", "partner",
		"kids", "children", "community",
	}
	sleepKeywords = []string{
		"sleep", "nap", "rest",
	}

	strengthKeywords = []string{"strength", "lifting", "weights", "resistance"}
	aerobicKeywords  = []string{"aerobic", "cardio", "run", "jog", "swim", "cycling", "walk"}
)

// ClassifyActivity maps an activity name to its kind by case-insensitive
// substring match.
func ClassifyActivity(name string) ActivityKind {
	lower := strings.ToLower(name)
	switch {
	case matchesAny(lower, exerciseKeywords):
		return KindExercise
	case matchesAny(lower, learningKeywords):
		return KindLearning
	case matchesAny(lower, workKeywords):
		return KindWork
	case matchesAny(lower, socialKeywords):
		return KindSocial
	case matchesAny(lower, sleepKeywords):
		return KindSleep
	default:
		return KindOther
	}
}

// ClassifyExercise sub-classifies an exercise activity. Names matching both
// strength and aerobic vocabularies count as combined training.
func ClassifyExercise(name string) ExerciseType {
	lower := strings.ToLower(name)
	strength := matchesAny(lower, strengthKeywords)
	aerobic := matchesAny(lower, aerobicKeywords)
	switch {
	case strength && aerobic:
		return ExerciseCombined
	case strength:
		return ExerciseStrength
	case aerobic:
		return ExerciseAerobic
	default:
		return ExerciseGeneral
	}
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
