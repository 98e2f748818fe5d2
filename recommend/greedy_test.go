package recommend

import (
	"testing"

	"doudizhu/internal/card"
	"doudizhu/internal/state"
)

func ranks(codes ...int) []card.Rank {
	out := make([]card.Rank, len(codes))
	for i, c := range codes {
		out[i] = card.Rank(c)
	}
	return out
}

func TestGreedyPicksLowestNonPass(t *testing.T) {
	infoset := &state.Infoset{
		LegalActions: [][]card.Rank{{}, ranks(9), ranks(5), ranks(7, 7, 7, 7)},
	}
	got, err := Greedy{}.Recommend(infoset)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("got %v, want [5]", got)
	}
}

func TestGreedyPassesWhenOnlyPassIsLegal(t *testing.T) {
	infoset := &state.Infoset{LegalActions: [][]card.Rank{{}}}
	got, err := Greedy{}.Recommend(infoset)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want pass", got)
	}
}

func TestGreedyErrorsWithNoLegalActions(t *testing.T) {
	infoset := &state.Infoset{}
	if _, err := (Greedy{}).Recommend(infoset); err == nil {
		t.Fatal("expected an error when no legal actions are offered")
	}
}
