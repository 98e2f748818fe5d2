package main

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"doudizhu/internal/card"
	"doudizhu/internal/config"
)

// DealCmd shuffles a full deck under a deterministic seed and prints, in
// card-text form, the landlord's 20-card hand (17 dealt cards plus the
// bottom cards), the two farmers' 17-card hands, and the 3 bottom cards.
type DealCmd struct {
	Seed int64 `help:"Deterministic shuffle seed" default:"1"`
}

func (c *DealCmd) Run(cfg *config.Config) error {
	logger := log.Default().WithPrefix("deal")

	deck := card.FullDeck()
	rng := rand.New(rand.NewSource(c.Seed))
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	landlordHand := card.Sorted(append(append([]card.Rank{}, deck[0:17]...), deck[51:54]...))
	down := card.Sorted(deck[17:34])
	up := card.Sorted(deck[34:51])
	bottom := card.Sorted(deck[51:54])

	logger.Info("dealt", "seed", c.Seed, "default_seat", cfg.Seat.DefaultRole)
	fmt.Printf("landlord:      %s%s\n", card.ToText(landlordHand), seatMarker(cfg, "landlord"))
	fmt.Printf("landlord_down: %s%s\n", card.ToText(down), seatMarker(cfg, "landlord_down"))
	fmt.Printf("landlord_up:   %s%s\n", card.ToText(up), seatMarker(cfg, "landlord_up"))
	fmt.Printf("bottom_cards:  %s\n", card.ToText(bottom))
	return nil
}

// seatMarker annotates the hand matching the operator's configured default
// seat, e.g. "seat { default_role = \"landlord_up\" }" in ddzcli.hcl.
func seatMarker(cfg *config.Config, role string) string {
	if cfg.Seat.DefaultRole == role {
		return "  (you)"
	}
	return ""
}
