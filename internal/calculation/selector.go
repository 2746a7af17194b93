package calculation

import "math/rand"

// Selector picks which of the equally-valid recommendation messages to
// surface. Message choice is presentation, not contract: the numeric analysis
// fields never depend on it. The default is deterministic so repeated
// requests render identically.
type Selector interface {
	Select(candidates []string, n int) []string
}

// FixedSelector returns the first n candidates in their priority order.
type FixedSelector struct{}

func (FixedSelector) Select(candidates []string, n int) []string {
	if n >= len(candidates) {
		return candidates
	}
	return candidates[:n]
}

// SeededSelector shuffles candidates with a caller-owned source before
// truncating, for callers that want variety with reproducibility.
type SeededSelector struct {
	Rand *rand.Rand
}

func (s SeededSelector) Select(candidates []string, n int) []string {
	shuffled := make([]string, len(candidates))
	copy(shuffled, candidates)
	s.Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}
