// Package legal turns a hand and the action history into the set of
// moves the player to act may legally make, per spec.md §5.
package legal

import (
	"sort"

	"doudizhu/internal/card"
	"doudizhu/internal/classify"
	"doudizhu/internal/generate"
)

// RivalMove returns the move the current player must beat: the last
// non-pass entry in actionSeq, or nil if the player is leading (either
// the sequence is empty, or the only preceding play was also a pass).
func RivalMove(actionSeq [][]card.Rank) []card.Rank {
	if len(actionSeq) == 0 {
		return nil
	}
	last := actionSeq[len(actionSeq)-1]
	if len(last) == 0 {
		if len(actionSeq) >= 2 {
			return actionSeq[len(actionSeq)-2]
		}
		return nil
	}
	return last
}

// Actions returns every legal move for hand given the action history,
// sorted card-wise within each move. The empty move (pass) is included
// whenever the player isn't leading.
func Actions(hand []card.Rank, actionSeq [][]card.Rank) [][]card.Rank {
	g := generate.New(hand)
	rival := RivalMove(actionSeq)

	if len(rival) == 0 {
		return finalize(g.GenAll())
	}

	rivalInfo := classify.Classify(rival)
	var moves [][]card.Rank

	switch rivalInfo.Kind {
	case classify.Single:
		moves = filterBeats(g.Singles(), rivalInfo)
	case classify.Pair:
		moves = filterBeats(g.Pairs(), rivalInfo)
	case classify.Triple:
		moves = filterBeats(g.Triples(), rivalInfo)
	case classify.TripleOne:
		moves = filterBeats(g.TripleOne(), rivalInfo)
	case classify.TripleTwo:
		moves = filterBeats(g.TripleTwo(), rivalInfo)
	case classify.SerialSingle:
		moves = filterBeats(g.SerialSingle(rivalInfo.Length), rivalInfo)
	case classify.SerialPair:
		moves = filterBeats(g.SerialPair(rivalInfo.Length), rivalInfo)
	case classify.SerialTriple:
		moves = filterBeats(g.SerialTriple(rivalInfo.Length), rivalInfo)
	case classify.SerialTripleOne:
		moves = filterBeats(g.SerialTripleOne(rivalInfo.Length), rivalInfo)
	case classify.SerialTripleTwo:
		moves = filterBeats(g.SerialTripleTwo(rivalInfo.Length), rivalInfo)
	case classify.FourTwo:
		moves = filterBeats(g.FourTwo(), rivalInfo)
	case classify.FourTwoPairs:
		moves = filterBeats(g.FourTwoPairs(), rivalInfo)
	case classify.Bomb:
		moves = filterBeats(append(append([][]card.Rank{}, g.Bombs()...), g.KingBomb()...), rivalInfo)
	case classify.KingBomb:
		// Nothing outranks the king bomb; the only legal action is pass.
		return [][]card.Rank{{}}
	default:
		return [][]card.Rank{{}}
	}

	if rivalInfo.Kind != classify.Bomb && rivalInfo.Kind != classify.KingBomb {
		moves = append(moves, g.Bombs()...)
		moves = append(moves, g.KingBomb()...)
	}
	moves = append(moves, []card.Rank{})

	return finalize(moves)
}

func filterBeats(candidates [][]card.Rank, rival classify.MoveInfo) [][]card.Rank {
	var out [][]card.Rank
	for _, c := range candidates {
		if classify.Beats(classify.Classify(c), rival) {
			out = append(out, c)
		}
	}
	return out
}

func finalize(moves [][]card.Rank) [][]card.Rank {
	out := make([][]card.Rank, len(moves))
	for i, m := range moves {
		sorted := append([]card.Rank{}, m...)
		sort.Slice(sorted, func(a, b int) bool { return sorted[a] < sorted[b] })
		out[i] = sorted
	}
	return out
}

// IsBomb reports whether cards classifies as Bomb or KingBomb.
func IsBomb(cards []card.Rank) bool {
	k := classify.Classify(cards).Kind
	return k == classify.Bomb || k == classify.KingBomb
}

// IsCompatible reports whether action is a legal response to rivalMove,
// without consulting hand contents: pass is legal only when rivalMove is
// non-empty; any play must classify cleanly and Beat rivalMove (or
// rivalMove must be empty, i.e. action is leading).
func IsCompatible(action, rivalMove []card.Rank) bool {
	if len(action) == 0 {
		return len(rivalMove) != 0
	}
	info := classify.Classify(action)
	if info.Kind == classify.Wrong {
		return false
	}
	if len(rivalMove) == 0 {
		return true
	}
	return classify.Beats(info, classify.Classify(rivalMove))
}
