package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"doudizhu/internal/config"
)

// VerifyCmd validates that every file in Files replays cleanly: each
// action is legal for its declared actor against the declared deal. Files
// are checked concurrently since validation is pure CPU work with no
// shared state between logs.
type VerifyCmd struct {
	Files []string `arg:"" help:"Replay log JSON files to validate"`
}

// verifyReport is one file's verification outcome, stamped with the
// reporter's clock so verify's output is reproducible under test without
// sleeping on wall-clock time.
type verifyReport struct {
	File  string
	OK    bool
	Error string
	At    string
}

func (c *VerifyCmd) Run(cfg *config.Config) error {
	return runVerify(c.Files, cfg, quartz.NewReal())
}

func runVerify(files []string, cfg *config.Config, clock quartz.Clock) error {
	logger := log.Default().WithPrefix("verify")

	reports := make([]verifyReport, len(files))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	for i, path := range files {
		i, path := i, resolveReplayPath(cfg, path)
		g.Go(func() error {
			report := verifyOne(path, clock)
			mu.Lock()
			reports[i] = report
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failures := 0
	for _, r := range reports {
		if r.OK {
			logger.Info("ok", "file", r.File, "at", r.At)
			fmt.Printf("OK   %s\n", r.File)
		} else {
			failures++
			logger.Error("failed", "file", r.File, "error", r.Error, "at", r.At)
			fmt.Printf("FAIL %s: %s\n", r.File, r.Error)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d replay logs failed verification", failures, len(files))
	}
	return nil
}

func verifyOne(path string, clock quartz.Clock) verifyReport {
	at := clock.Now().Format("15:04:05.000")

	rlog, err := loadReplayLog(path)
	if err != nil {
		return verifyReport{File: path, Error: err.Error(), At: at}
	}
	g, err := rlog.newGameState()
	if err != nil {
		return verifyReport{File: path, Error: err.Error(), At: at}
	}
	if err := rlog.replayInto(g); err != nil {
		return verifyReport{File: path, Error: err.Error(), At: at}
	}
	return verifyReport{File: path, OK: true, At: at}
}
