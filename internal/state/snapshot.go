package state

import "doudizhu/internal/card"

// LogStep is one played step in a Snapshot's action log, numbered from 1
// for display in the replay viewer.
type LogStep struct {
	Step  int
	Actor Role
	Text  string
}

// Snapshot is a text-rendered, display-ready view of a GameState: every
// card multiset spelled out via card.ToText instead of left as ranks.
type Snapshot struct {
	UserRole           Role
	ActingRole         Role
	HandText           string
	CardsLeft          map[Role]int
	PlayedCardsText    map[Role]string
	LastMoveByRoleText map[Role]string
	ActionSeqText      []string
	BombCount          int
	LastActor          Role
	BottomCardsText    string
	GameOver           bool
	Winner             string
	NeedUserAction     bool
	ActionLog          []LogStep
}

// Snapshot renders the current GameState for display (CLI output or the
// TUI replay viewer).
func (g *GameState) Snapshot() Snapshot {
	playedText := make(map[Role]string, len(g.PlayedCards))
	for r, cards := range g.PlayedCards {
		playedText[r] = card.ToText(cards)
	}
	lastMoveText := make(map[Role]string, len(g.LastMoveByRole))
	for r, cards := range g.LastMoveByRole {
		lastMoveText[r] = card.ToText(cards)
	}

	steps := make([]LogStep, len(g.actionLog))
	for i, e := range g.actionLog {
		steps[i] = LogStep{Step: i + 1, Actor: e.Actor, Text: card.ToText(e.Action)}
	}

	return Snapshot{
		UserRole:           g.UserRole,
		ActingRole:         g.ActingRole,
		HandText:           card.ToText(g.HandCards),
		CardsLeft:          copyIntMap(g.CardsLeft),
		PlayedCardsText:    playedText,
		LastMoveByRoleText: lastMoveText,
		ActionSeqText:      card.ActionsToText(g.ActionSeq),
		BombCount:          g.BombCount,
		LastActor:          g.LastActor,
		BottomCardsText:    card.ToText(g.BottomCards),
		GameOver:           g.GameOver,
		Winner:             g.Winner,
		NeedUserAction:     g.NeedUserAction(),
		ActionLog:          steps,
	}
}
