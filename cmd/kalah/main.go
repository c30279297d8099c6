package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `short:"c" default:"kalah.hcl" help:"Path to HCL config file"`

	Play     PlayCmd     `cmd:"" help:"Play an interactive game against the engine"`
	Tui      TuiCmd      `cmd:"" help:"Play against the engine in a full-screen TUI"`
	Simulate SimulateCmd `cmd:"" help:"Run engine-vs-opponent simulation batches"`
	Bench    BenchCmd    `cmd:"" help:"Measure search nodes and time per depth"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("kalah"),
		kong.Description("Kalah rules engine with fixed-depth alpha-beta search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
