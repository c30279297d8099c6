package main

import (
	"github.com/lox/kalah-cli/internal/config"
	"github.com/lox/kalah-cli/internal/tui"
)

// TuiCmd runs the full-screen interactive match.
type TuiCmd struct {
	Depth       int  `help:"Override search depth from config"`
	SeedsPerPit int  `help:"Override seeds per pit from config"`
	EngineFirst bool `help:"Engine moves first"`
}

func (c *TuiCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Depth > 0 {
		cfg.Game.SearchDepth = c.Depth
	}
	if c.SeedsPerPit > 0 {
		cfg.Game.SeedsPerPit = c.SeedsPerPit
	}

	logger, closer, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	driver := tui.NewDriver(uint8(cfg.Game.SeedsPerPit), cfg.Game.SearchDepth, c.EngineFirst, logger)
	return tui.Run(driver, logger)
}
