package state

import "doudizhu/internal/card"

// Infoset is the partial-information view handed to a recommender
// (package recommend): everything the tracked role could legitimately
// condition a decision on, and nothing it couldn't observe.
type Infoset struct {
	PlayerPosition Role
	PlayerHand     []card.Rank
	CardsLeft      map[Role]int
	BottomCards    []card.Rank
	ActionSeq      [][]card.Rank
	OtherHandCards []card.Rank // unseen cards: deck minus hand minus every played card
	LegalActions   [][]card.Rank
	LastMove       []card.Rank
	LastTwoMoves   [2][]card.Rank
	LastMoveByRole map[Role][]card.Rank
	PlayedCards    map[Role][]card.Rank
	AllHandCards   map[Role][]card.Rank // only PlayerPosition's entry is populated
	LastActor      Role
	BombCount      int
}

// BuildInfoset returns the tracked role's current information set. It
// errors if called when the role isn't on the clock — the set of legal
// actions it embeds is only meaningful at decision time.
func (g *GameState) BuildInfoset() (*Infoset, error) {
	if !g.NeedUserAction() {
		return nil, newValidationError("cannot build infoset: not user's turn")
	}

	allHandCards := map[Role][]card.Rank{Landlord: nil, LandlordDown: nil, LandlordUp: nil}
	allHandCards[g.UserRole] = append([]card.Rank{}, g.HandCards...)

	return &Infoset{
		PlayerPosition: g.UserRole,
		PlayerHand:     append([]card.Rank{}, g.HandCards...),
		CardsLeft:      copyIntMap(g.CardsLeft),
		BottomCards:    append([]card.Rank{}, g.BottomCards...),
		ActionSeq:      copySeq(g.ActionSeq),
		OtherHandCards: g.remainingUnseenCards(),
		LegalActions:   g.LegalActionsForUser(),
		LastMove:       append([]card.Rank{}, g.LastMove()...),
		LastTwoMoves:   g.LastTwoMoves(),
		LastMoveByRole: copyRoleCards(g.LastMoveByRole),
		PlayedCards:    copyRoleCards(g.PlayedCards),
		AllHandCards:   allHandCards,
		LastActor:      g.LastActor,
		BombCount:      g.BombCount,
	}, nil
}

func copyIntMap(m map[Role]int) map[Role]int {
	out := make(map[Role]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyRoleCards(m map[Role][]card.Rank) map[Role][]card.Rank {
	out := make(map[Role][]card.Rank, len(m))
	for k, v := range m {
		out[k] = append([]card.Rank{}, v...)
	}
	return out
}

func copySeq(seq [][]card.Rank) [][]card.Rank {
	out := make([][]card.Rank, len(seq))
	for i, a := range seq {
		out[i] = append([]card.Rank{}, a...)
	}
	return out
}
