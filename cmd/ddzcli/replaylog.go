package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"doudizhu/internal/card"
	"doudizhu/internal/config"
	"doudizhu/internal/state"
)

// resolveReplayPath returns path unchanged if it exists as given, or
// resolved against the operator's configured history directory otherwise
// — so "ddzcli replay hand3.json" finds files written under history.dir
// without the operator spelling out the full path each time.
func resolveReplayPath(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	candidate := filepath.Join(cfg.History.Dir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}

// replayLog is the on-disk format replay/verify/watch all share: a deal
// plus the sequence of actions played against it, each in card-text form.
type replayLog struct {
	UserRole    string      `json:"user_role"`
	Hand        string      `json:"hand"`
	BottomCards string      `json:"bottom_cards"`
	Actions     []logAction `json:"actions"`
}

type logAction struct {
	Actor string `json:"actor"`
	Text  string `json:"text"`
}

func loadReplayLog(path string) (*replayLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var log replayLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &log, nil
}

// newGameState builds the GameState a replayLog's deal describes. Hand and
// BottomCards go through card.ParseHandPayload rather than plain
// ParseActionText: both are hand-like fields (non-empty, every rank real,
// no rank past its own deck-copy count), not bare actions.
func (l *replayLog) newGameState() (*state.GameState, error) {
	hand, err := card.ParseHandPayload(card.TextPayload(l.Hand), "hand")
	if err != nil {
		return nil, fmt.Errorf("hand: %w", err)
	}
	bottom, err := card.ParseHandPayload(card.TextPayload(l.BottomCards), "bottom_cards")
	if err != nil {
		return nil, fmt.Errorf("bottom_cards: %w", err)
	}
	return state.Create(state.Role(l.UserRole), hand, bottom)
}

// replayInto applies every action in l against g with validation enabled,
// so a log whose actor order is wrong, or whose move is illegal for its
// actor (not among the tracked role's legal actions, or incompatible with
// the current rival move / visible remaining cards for an opponent), is
// rejected rather than silently replayed.
func (l *replayLog) replayInto(g *state.GameState) error {
	for i, a := range l.Actions {
		action, err := card.ParseActionText(a.Text)
		if err != nil {
			return fmt.Errorf("action %d (%s): %w", i+1, a.Text, err)
		}
		if string(g.ActingRole) != a.Actor {
			return fmt.Errorf("action %d: log says %s acted, engine expects %s", i+1, a.Actor, g.ActingRole)
		}
		if err := g.Apply(action, true); err != nil {
			return fmt.Errorf("action %d (%s): %w", i+1, a.Text, err)
		}
	}
	return nil
}
