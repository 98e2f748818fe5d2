// Package config loads ddzcli's operator configuration: default seat,
// log level, and the directory bare replay-log file names are looked up in. It
// is strictly a CLI concern — the engine packages (card, classify,
// generate, legal, state) never read it; they take every parameter
// explicitly.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the decoded contents of an HCL operator config file.
type Config struct {
	Seat    SeatSettings    `hcl:"seat,block"`
	Logging LoggingSettings `hcl:"logging,block"`
	History HistorySettings `hcl:"history,block"`
}

// SeatSettings picks which role ddzcli tracks by default.
type SeatSettings struct {
	DefaultRole string `hcl:"default_role,optional"`
}

// LoggingSettings controls charmbracelet/log's level and report style.
type LoggingSettings struct {
	Level      string `hcl:"level,optional"`
	ReportTime bool   `hcl:"report_time,optional"`
}

// HistorySettings names the directory replay, verify and watch search for a
// replay-log file that is not found relative to the working directory.
type HistorySettings struct {
	Dir string `hcl:"dir,optional"`
}

// Default returns the configuration ddzcli uses when no file is present.
func Default() *Config {
	return &Config{
		Seat:    SeatSettings{DefaultRole: "landlord"},
		Logging: LoggingSettings{Level: "info", ReportTime: false},
		History: HistorySettings{Dir: "./ddz-history"},
	}
}

// Load reads and decodes an HCL config file at path, falling back to
// Default when the file doesn't exist. Fields the file omits keep their
// default value.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}

	cfg := *Default()
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", path, diags.Error())
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	defaults := Default()
	if cfg.Seat.DefaultRole == "" {
		cfg.Seat.DefaultRole = defaults.Seat.DefaultRole
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.History.Dir == "" {
		cfg.History.Dir = defaults.History.Dir
	}
}

// Validate reports whether cfg holds values the rest of ddzcli can act
// on.
func (c *Config) Validate() error {
	switch c.Seat.DefaultRole {
	case "landlord", "landlord_down", "landlord_up":
	default:
		return fmt.Errorf("invalid default_role: %q", c.Seat.DefaultRole)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	if c.History.Dir == "" {
		return fmt.Errorf("history dir must not be empty")
	}
	return nil
}
