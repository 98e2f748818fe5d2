package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"doudizhu/internal/card"
	"doudizhu/internal/classify"
)

// ParseCmd parses a card-text action and reports its classification.
type ParseCmd struct {
	Text string `arg:"" help:"Card text, e.g. 334455, 10JQKA2XD, or PASS"`
}

func (c *ParseCmd) Run() error {
	logger := log.Default().WithPrefix("parse")

	cards, err := card.ParseActionText(c.Text)
	if err != nil {
		logger.Error("parse failed", "text", c.Text, "error", err)
		return err
	}

	info := classify.Classify(cards)
	logger.Info("parsed", "text", c.Text, "cards", card.ToText(cards))
	fmt.Printf("kind=%v rank=%v length=%v\n", info.Kind, info.Rank, info.Length)
	return nil
}
