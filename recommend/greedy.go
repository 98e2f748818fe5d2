package recommend

import (
	"doudizhu/internal/card"
	"doudizhu/internal/state"
)

// Greedy is a deterministic reference strategy: it plays the
// lowest-ranked non-pass legal action, and passes only when no non-pass
// action is available. It exists for tests and the CLI's watch viewer,
// not as a scoring engine — grounded on the teacher's
// bot.CalculateMove "start with the lowest card" fallback.
type Greedy struct{}

// Recommend implements Recommender.
func (Greedy) Recommend(infoset *state.Infoset) ([]card.Rank, error) {
	if len(infoset.LegalActions) == 0 {
		return nil, &Error{Reason: "no legal actions available"}
	}

	var best []card.Rank
	for _, action := range infoset.LegalActions {
		if len(action) == 0 {
			continue // pass is the fallback, never the first choice
		}
		if best == nil || lowerMove(action, best) {
			best = action
		}
	}
	if best != nil {
		return best, nil
	}
	return []card.Rank{}, nil // every legal action is pass: leading is impossible here
}

// lowerMove orders two legal moves by lowest-card-first, then by
// shorter length, matching "start with the lowest card."
func lowerMove(a, b []card.Rank) bool {
	sa, sb := card.Sorted(a), card.Sorted(b)
	if sa[0] != sb[0] {
		return sa[0] < sb[0]
	}
	return len(sa) < len(sb)
}
