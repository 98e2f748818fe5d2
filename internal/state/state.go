// Package state tracks one Dou Dizhu deal from the perspective of a single
// player with a partial, observer's view of the table: it knows its own
// hand exactly and everyone else's only as "unseen cards." It is the
// stateful counterpart to the pure internal/classify, internal/generate
// and internal/legal packages, replaying the action log to derive
// everything else — there is no separate undo log of deltas.
package state

import (
	"fmt"

	"doudizhu/internal/card"
	"doudizhu/internal/classify"
	"doudizhu/internal/legal"
)

// Role identifies one of the three seats at a Dou Dizhu table.
type Role string

const (
	Landlord     Role = "landlord"
	LandlordDown Role = "landlord_down"
	LandlordUp   Role = "landlord_up"
)

// roleOrder is the fixed turn order: landlord leads, then play passes
// counter-clockwise through the two farmers.
var roleOrder = []Role{Landlord, LandlordDown, LandlordUp}

func isValidRole(r Role) bool {
	for _, candidate := range roleOrder {
		if candidate == r {
			return true
		}
	}
	return false
}

func nextRole(r Role) Role {
	for i, candidate := range roleOrder {
		if candidate == r {
			return roleOrder[(i+1)%len(roleOrder)]
		}
	}
	return r
}

// Config is the immutable deal: which role the tracked player holds, the
// 17 cards they were dealt, and the 3 bottom cards (known once they're
// dealt to the landlord, whether or not the tracked player holds them).
type Config struct {
	UserRole           Role
	InitialHand        []card.Rank
	InitialBottomCards []card.Rank
}

// logEntry is one played-or-passed action, in the order it happened.
type logEntry struct {
	Actor  Role
	Action []card.Rank
}

// GameState is a mutable, replayable tracker for one deal. All fields are
// exported for read access from callers (the CLI, the recommender); use
// Apply and Undo to mutate it.
type GameState struct {
	Config Config

	UserRole       Role
	ActingRole     Role
	HandCards      []card.Rank
	BottomCards    []card.Rank // bottom cards not yet played by the landlord
	ActionSeq      [][]card.Rank
	PlayedCards    map[Role][]card.Rank
	LastMoveByRole map[Role][]card.Rank
	CardsLeft      map[Role]int
	LastActor      Role
	BombCount      int
	GameOver       bool
	Winner         string // "landlord", "farmer", or "" while the deal is live

	actionLog []logEntry
}

// Create validates a deal and builds a fresh GameState at its start.
func Create(userRole Role, hand, bottomCards []card.Rank) (*GameState, error) {
	cfg := Config{
		UserRole:           userRole,
		InitialHand:        card.Sorted(hand),
		InitialBottomCards: card.Sorted(bottomCards),
	}
	return New(cfg)
}

// New validates cfg and builds a fresh GameState from it.
func New(cfg Config) (*GameState, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	g := &GameState{Config: cfg}
	g.reset()
	return g, nil
}

func validateConfig(cfg Config) error {
	if !isValidRole(cfg.UserRole) {
		return newValidationError("unsupported role: %q", cfg.UserRole)
	}
	if len(cfg.InitialHand) != 17 {
		return newValidationError("role %q expects 17 cards in hand, got %d", cfg.UserRole, len(cfg.InitialHand))
	}
	if len(cfg.InitialBottomCards) != 3 {
		return newValidationError("bottom cards must contain exactly 3 cards, got %d", len(cfg.InitialBottomCards))
	}

	combined := append(append([]card.Rank{}, cfg.InitialHand...), cfg.InitialBottomCards...)
	if err := card.ValidateNotExceedDeck(combined, "hand+bottom"); err != nil {
		return newValidationError("%s", err)
	}
	return nil
}

// reset rebuilds every runtime field from Config, discarding action
// history. Apply replays actionLog afterward to restore state — this is
// the only mutation path Undo needs.
func (g *GameState) reset() {
	g.UserRole = g.Config.UserRole
	g.ActingRole = Landlord
	g.HandCards = append([]card.Rank{}, g.Config.InitialHand...)
	if g.UserRole == Landlord {
		g.HandCards = append(g.HandCards, g.Config.InitialBottomCards...)
		g.HandCards = card.Sorted(g.HandCards)
	}
	g.BottomCards = append([]card.Rank{}, g.Config.InitialBottomCards...)
	g.ActionSeq = nil
	g.PlayedCards = map[Role][]card.Rank{Landlord: nil, LandlordDown: nil, LandlordUp: nil}
	g.LastMoveByRole = map[Role][]card.Rank{Landlord: nil, LandlordDown: nil, LandlordUp: nil}
	g.CardsLeft = map[Role]int{Landlord: 20, LandlordDown: 17, LandlordUp: 17}
	g.LastActor = Landlord
	g.BombCount = 0
	g.GameOver = false
	g.Winner = ""
}

// remainingUnseenCounter is the deck minus the tracked hand and every
// played card: what the other two roles could still be holding.
func (g *GameState) remainingUnseenCounter() map[card.Rank]int {
	counter := map[card.Rank]int{}
	for _, r := range []card.Rank{card.Three, card.Four, card.Five, card.Six, card.Seven, card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace, card.Two, card.BlackJoker, card.RedJoker} {
		counter[r] = card.DeckCopies(r)
	}
	for _, c := range g.HandCards {
		counter[c]--
	}
	for _, role := range roleOrder {
		for _, c := range g.PlayedCards[role] {
			counter[c]--
		}
	}
	for r, n := range counter {
		if n <= 0 {
			delete(counter, r)
		}
	}
	return counter
}

func (g *GameState) remainingUnseenCards() []card.Rank {
	counter := g.remainingUnseenCounter()
	var out []card.Rank
	for r, n := range counter {
		for i := 0; i < n; i++ {
			out = append(out, r)
		}
	}
	return card.Sorted(out)
}

// LastMove is the move the acting role must beat (or nil if they're
// leading).
func (g *GameState) LastMove() []card.Rank {
	return legal.RivalMove(g.ActionSeq)
}

// LastTwoMoves returns the most recent two entries of ActionSeq, oldest
// first, padding with empty moves if fewer than two actions happened.
func (g *GameState) LastTwoMoves() [2][]card.Rank {
	var out [2][]card.Rank
	n := len(g.ActionSeq)
	if n >= 1 {
		out[1] = g.ActionSeq[n-1]
	}
	if n >= 2 {
		out[0] = g.ActionSeq[n-2]
	}
	return out
}

// NeedUserAction reports whether the tracked role is on the clock.
func (g *GameState) NeedUserAction() bool {
	return !g.GameOver && g.ActingRole == g.UserRole
}

// LegalActionsForUser returns the tracked role's legal moves, or nil if
// it isn't their turn.
func (g *GameState) LegalActionsForUser() [][]card.Rank {
	if !g.NeedUserAction() {
		return nil
	}
	return legal.Actions(g.HandCards, g.ActionSeq)
}

func (g *GameState) validateUserAction(action []card.Rank) error {
	legalMoves := g.LegalActionsForUser()
	for _, m := range legalMoves {
		if rankSliceEqual(m, action) {
			return nil
		}
	}
	return newValidationError("invalid action for your turn: %s", card.ToText(action))
}

func (g *GameState) validateOpponentAction(action []card.Rank) error {
	actor := g.ActingRole
	rivalMove := g.LastMove()

	if len(action) == 0 {
		if len(rivalMove) == 0 {
			return newValidationError("pass is not allowed when leading a new round")
		}
		return nil
	}
	if len(action) > g.CardsLeft[actor] {
		return newValidationError("%s does not have enough cards left for this action", actor)
	}
	if classify.Classify(action).Kind == classify.Wrong {
		return newValidationError("opponent action is not a valid dou dizhu move")
	}
	if !legal.IsCompatible(action, rivalMove) {
		return newValidationError("opponent action cannot beat the current rival move")
	}

	unseen := g.remainingUnseenCounter()
	for r, n := range card.Counts(action) {
		if n > unseen[r] {
			return newValidationError("opponent action exceeds the visible remaining card pool")
		}
	}
	return nil
}

// Apply plays action (empty for pass) as the current acting role. When
// validate is true, the action is checked against legal moves for the
// tracked role, or against compatibility/visibility rules for the other
// two roles (whose hands are never directly known).
func (g *GameState) Apply(action []card.Rank, validate bool) error {
	if g.GameOver {
		return newValidationError("game already over")
	}
	if !isValidRole(g.ActingRole) {
		return newValidationError("unknown acting role: %q", g.ActingRole)
	}

	action = card.Sorted(action)
	actor := g.ActingRole

	if validate {
		var err error
		if actor == g.UserRole {
			err = g.validateUserAction(action)
		} else {
			err = g.validateOpponentAction(action)
		}
		if err != nil {
			return err
		}
	}

	g.actionLog = append(g.actionLog, logEntry{Actor: actor, Action: append([]card.Rank{}, action...)})
	g.LastMoveByRole[actor] = append([]card.Rank{}, action...)
	g.ActionSeq = append(g.ActionSeq, append([]card.Rank{}, action...))

	if len(action) > 0 {
		if actor == g.UserRole {
			g.HandCards = removeCards(g.HandCards, action)
		}

		g.PlayedCards[actor] = append(g.PlayedCards[actor], action...)
		g.CardsLeft[actor] -= len(action)
		if g.CardsLeft[actor] < 0 {
			panic(fmt.Sprintf("doudizhu/state: %s card count dropped below zero", actor))
		}

		if actor == Landlord && len(g.BottomCards) > 0 {
			g.BottomCards = removeCards(g.BottomCards, intersect(g.BottomCards, action))
		}

		g.LastActor = actor
	}

	if legal.IsBomb(action) {
		g.BombCount++
	}

	g.checkGameOver()
	if !g.GameOver {
		g.ActingRole = nextRole(g.ActingRole)
	}
	return nil
}

func (g *GameState) checkGameOver() {
	for _, role := range roleOrder {
		if g.CardsLeft[role] == 0 {
			g.GameOver = true
			if role == Landlord {
				g.Winner = "landlord"
			} else {
				g.Winner = "farmer"
			}
			return
		}
	}
}

// Undo pops the most recent action and rebuilds state by replaying
// everything before it, per the package doc: there is no delta log, only
// the full history replayed from Config.
func (g *GameState) Undo() error {
	if len(g.actionLog) == 0 {
		return newValidationError("no action to undo")
	}
	replay := g.actionLog[:len(g.actionLog)-1]
	actions := make([][]card.Rank, len(replay))
	for i, e := range replay {
		actions[i] = e.Action
	}
	g.reset()
	g.actionLog = nil
	for _, a := range actions {
		if err := g.Apply(a, false); err != nil {
			return err
		}
	}
	return nil
}

// removeCards strips remove from from, one card at a time. A card in
// remove that isn't present in from is a broken invariant, never a
// recoverable validation failure — by the time Apply calls this, the
// action was already checked against legal_actions (or trusted from a
// replayed log), so this path panics rather than returning an error.
func removeCards(from, remove []card.Rank) []card.Rank {
	out := append([]card.Rank{}, from...)
	for _, c := range remove {
		idx := -1
		for i, h := range out {
			if h == c {
				idx = i
				break
			}
		}
		if idx == -1 {
			panic(fmt.Sprintf("doudizhu/state: card %s not present in hand", card.RankText(c)))
		}
		out = append(out[:idx], out[idx+1:]...)
	}
	return card.Sorted(out)
}

func intersect(a, b []card.Rank) []card.Rank {
	avail := card.Counts(a)
	var out []card.Rank
	for _, c := range b {
		if avail[c] > 0 {
			out = append(out, c)
			avail[c]--
		}
	}
	return out
}

func rankSliceEqual(a, b []card.Rank) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
