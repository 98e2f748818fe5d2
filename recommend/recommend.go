// Package recommend is the boundary a move-recommendation strategy
// implements. The engine packages (card, classify, generate, legal,
// state) know nothing about this package — a Recommender only ever
// consumes a state.Infoset and returns one of its LegalActions.
package recommend

import (
	"doudizhu/internal/card"
	"doudizhu/internal/state"
)

// Recommender picks one of infoset.LegalActions. It must return either
// an action equal to one of those entries, or an error — never an
// action the caller didn't offer.
type Recommender interface {
	Recommend(infoset *state.Infoset) ([]card.Rank, error)
}

// Error reports a recommender's inability to produce a move, distinct
// from an invalid-state error raised by package state.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return e.Reason }
