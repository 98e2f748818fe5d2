package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"doudizhu/internal/config"
)

// ReplayCmd replays a recorded action log against its declared deal and
// prints the resulting Snapshot.
type ReplayCmd struct {
	File string `arg:"" help:"Path to a replay log JSON file"`
}

func (c *ReplayCmd) Run(cfg *config.Config) error {
	logger := log.Default().WithPrefix("replay")

	path := resolveReplayPath(cfg, c.File)
	rlog, err := loadReplayLog(path)
	if err != nil {
		return err
	}
	g, err := rlog.newGameState()
	if err != nil {
		return fmt.Errorf("invalid deal in %s: %w", path, err)
	}
	if err := rlog.replayInto(g); err != nil {
		logger.Error("replay failed", "file", path, "error", err)
		return err
	}

	snap := g.Snapshot()
	logger.Info("replayed", "file", path, "steps", len(snap.ActionLog))
	fmt.Printf("acting_role: %s\n", snap.ActingRole)
	fmt.Printf("hand: %s\n", snap.HandText)
	for role, text := range snap.PlayedCardsText {
		fmt.Printf("played[%s]: %s\n", role, text)
	}
	fmt.Printf("bomb_num: %d\n", snap.BombCount)
	fmt.Printf("game_over: %v winner: %q\n", snap.GameOver, snap.Winner)
	for _, step := range snap.ActionLog {
		fmt.Printf("  %3d. %-14s %s\n", step.Step, step.Actor, step.Text)
	}
	return nil
}
