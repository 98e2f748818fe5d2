package generate

import (
	"testing"

	"doudizhu/internal/card"
	"doudizhu/internal/classify"
)

func ranks(codes ...card.Rank) []card.Rank {
	out := make([]card.Rank, len(codes))
	copy(out, codes)
	return out
}

func containsMove(moves [][]card.Rank, want []card.Rank) bool {
	want = card.Sorted(want)
	for _, m := range moves {
		if len(m) != len(want) {
			continue
		}
		m = card.Sorted(m)
		match := true
		for i := range m {
			if m[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestAtomicCombinations(t *testing.T) {
	g := New(ranks(3, 3, 3, 4, 4, 20, 30))

	if got := len(g.Singles()); got != 4 {
		t.Fatalf("Singles() = %d entries, want 4", got)
	}
	if got := len(g.Pairs()); got != 2 {
		t.Fatalf("Pairs() = %d, want 2 (ranks 3 and 4)", got)
	}
	if got := len(g.Triples()); got != 1 {
		t.Fatalf("Triples() = %d, want 1 (rank 3)", got)
	}
	if got := g.KingBomb(); len(got) != 1 {
		t.Fatalf("KingBomb() = %v, want one entry", got)
	}
}

func TestTripleOneExcludesOwnRank(t *testing.T) {
	g := New(ranks(7, 7, 7, 3, 3))
	moves := g.TripleOne()
	if containsMove(moves, ranks(7, 7, 7, 7)) {
		t.Fatal("TripleOne must not use the triple's own rank as kicker")
	}
	if !containsMove(moves, ranks(7, 7, 7, 3)) {
		t.Fatal("expected 777+3")
	}
}

func TestSerialSingleWindows(t *testing.T) {
	g := New(ranks(3, 4, 5, 6, 7, 8))
	all := g.SerialSingle(0)
	if !containsMove(all, ranks(3, 4, 5, 6, 7)) {
		t.Fatal("missing length-5 window")
	}
	if !containsMove(all, ranks(4, 5, 6, 7, 8)) {
		t.Fatal("missing length-5 window shifted by one")
	}
	if !containsMove(all, ranks(3, 4, 5, 6, 7, 8)) {
		t.Fatal("missing length-6 window")
	}
	exact5 := g.SerialSingle(5)
	for _, m := range exact5 {
		if len(m) != 5 {
			t.Fatalf("SerialSingle(5) returned length %d", len(m))
		}
	}
}

func TestSerialSingleBreaksAtTwo(t *testing.T) {
	g := New(ranks(10, 11, 12, 13, 14, card.Two))
	all := g.SerialSingle(0)
	if containsMove(all, []card.Rank{10, 11, 12, 13, 14, card.Two}) {
		t.Fatal("a run must never cross into rank 2")
	}
	if !containsMove(all, ranks(10, 11, 12, 13, 14)) {
		t.Fatal("expected the 5-run below the 2 to survive")
	}
}

func TestSerialTripleOneKickerCombos(t *testing.T) {
	// 33344456: two triples (3,4) with kickers 5,6 — matches classify's S2.
	g := New(ranks(3, 3, 3, 4, 4, 4, 5, 6))
	moves := g.SerialTripleOne(2)
	if !containsMove(moves, ranks(3, 3, 3, 4, 4, 4, 5, 6)) {
		t.Fatalf("expected the full hand as a SerialTripleOne(2), got %v", moves)
	}
	for _, m := range moves {
		info := classify.Classify(m)
		if info.Kind != classify.SerialTripleOne {
			t.Fatalf("generated move %v classifies as %v, not SerialTripleOne", m, info.Kind)
		}
	}
}

func TestSerialTripleOneExcludesRunRankAsKicker(t *testing.T) {
	// hand has 4 copies of rank 3 (one triple-run rank); the leftover 4th
	// copy must not be offered as a kicker of its own run.
	g := New(append(ranks(3, 3, 3, 3, 4, 4, 4), ranks(5)...))
	for _, m := range g.SerialTripleOne(2) {
		counts := card.Counts(m)
		if counts[3] > 3 {
			t.Fatalf("kicker reused the triple run's own rank: %v", m)
		}
	}
}

func TestSerialTripleTwoRequiresNoSingles(t *testing.T) {
	g := New(ranks(3, 3, 3, 4, 4, 4, 5, 5, 6, 6))
	moves := g.SerialTripleTwo(2)
	if !containsMove(moves, ranks(3, 3, 3, 4, 4, 4, 5, 5, 6, 6)) {
		t.Fatalf("expected full SerialTripleTwo, got %v", moves)
	}
	for _, m := range moves {
		info := classify.Classify(m)
		if info.Kind != classify.SerialTripleTwo {
			t.Fatalf("generated move %v classifies as %v, not SerialTripleTwo", m, info.Kind)
		}
	}
}

func TestFourTwoVariants(t *testing.T) {
	g := New(ranks(7, 7, 7, 7, 3, 3, 4))
	moves := g.FourTwo()
	if !containsMove(moves, ranks(7, 7, 7, 7, 3, 3)) {
		t.Fatal("missing bomb+pair FourTwo")
	}
	if !containsMove(moves, ranks(7, 7, 7, 7, 3, 4)) {
		t.Fatal("missing bomb+two-singles FourTwo")
	}
	for _, m := range moves {
		if classify.Classify(m).Kind != classify.FourTwo {
			t.Fatalf("generated move %v is not FourTwo", m)
		}
	}
}

func TestFourTwoPairs(t *testing.T) {
	g := New(ranks(7, 7, 7, 7, 3, 3, 4, 4))
	moves := g.FourTwoPairs()
	if !containsMove(moves, ranks(7, 7, 7, 7, 3, 3, 4, 4)) {
		t.Fatal("missing bomb+two-pairs FourTwoPairs")
	}
	for _, m := range moves {
		if classify.Classify(m).Kind != classify.FourTwoPairs {
			t.Fatalf("generated move %v is not FourTwoPairs", m)
		}
	}
}

func TestGenAllOnlyEmitsClassifiableMoves(t *testing.T) {
	g := New(ranks(3, 3, 3, 4, 4, 4, 5, 5, 6, 7, 7, 7, 7, 20, 30))
	for _, m := range g.GenAll() {
		info := classify.Classify(m)
		if info.Kind == classify.Wrong {
			t.Fatalf("GenAll produced an unclassifiable move: %v", m)
		}
	}
}

func TestGenAllCoversBombAndKingBomb(t *testing.T) {
	g := New(ranks(7, 7, 7, 7, 20, 30))
	all := g.GenAll()
	if !containsMove(all, ranks(7, 7, 7, 7)) {
		t.Fatal("GenAll missing bomb")
	}
	if !containsMove(all, ranks(20, 30)) {
		t.Fatal("GenAll missing king bomb")
	}
}
