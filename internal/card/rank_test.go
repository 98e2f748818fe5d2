package card

import "testing"

func TestFullDeck(t *testing.T) {
	deck := FullDeck()
	if len(deck) != 54 {
		t.Fatalf("expected 54 cards, got %d", len(deck))
	}
	counts := Counts(deck)
	if counts[Three] != 4 {
		t.Fatalf("expected 4 threes, got %d", counts[Three])
	}
	if counts[BlackJoker] != 1 || counts[RedJoker] != 1 {
		t.Fatalf("expected exactly one of each joker, got %d/%d", counts[BlackJoker], counts[RedJoker])
	}
	for i := 1; i < len(deck); i++ {
		if deck[i] < deck[i-1] {
			t.Fatalf("deck is not sorted at index %d", i)
		}
	}
}

func TestDeckCopies(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Three, 4}, {Ace, 4}, {Two, 4}, {BlackJoker, 1}, {RedJoker, 1}, {Rank(99), 0},
	}
	for _, tt := range tests {
		if got := DeckCopies(tt.rank); got != tt.want {
			t.Errorf("DeckCopies(%d) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestIsValidRank(t *testing.T) {
	if !IsValidRank(Two) {
		t.Error("Two should be valid")
	}
	if IsValidRank(Rank(15)) {
		t.Error("15 should not be valid: it falls in the 14->17 gap")
	}
}
