// Command ddzcli is the operator-facing front end for the Dou Dizhu
// engine: parsing raw hand text, dealing demo hands, replaying and
// verifying recorded action logs, and stepping through a replay in an
// interactive terminal viewer.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"doudizhu/internal/config"
)

var version = "dev"

// CLI is the top-level kong command tree.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"Path to an HCL operator config file" default:"ddzcli.hcl"`

	Parse  ParseCmd  `cmd:"" help:"Parse card text and report its classification"`
	Deal   DealCmd   `cmd:"" help:"Deal a deterministic demo hand from a seed"`
	Replay ReplayCmd `cmd:"" help:"Replay a recorded action log and print the final snapshot"`
	Verify VerifyCmd `cmd:"" help:"Validate a batch of recorded action logs concurrently"`
	Watch  WatchCmd  `cmd:"" help:"Step through a recorded action log in an interactive viewer"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ddzcli"),
		kong.Description("Dou Dizhu rules engine and game tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(cfg.Validate())

	level, err := log.ParseLevel(cfg.Logging.Level)
	ctx.FatalIfErrorf(err)
	log.Default().SetLevel(level)
	log.Default().SetReportTimestamp(cfg.Logging.ReportTime)

	ctx.FatalIfErrorf(ctx.Run(cfg))
}
