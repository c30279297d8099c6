package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/kalah-cli/internal/config"
	"github.com/lox/kalah-cli/internal/simulator"
)

// SimulateCmd runs engine-vs-opponent batches and prints aggregate
// statistics.
type SimulateCmd struct {
	Matches       int    `default:"100" help:"Number of pairings to play"`
	Opponent      string `default:"random" help:"Opponent type: random, search"`
	OpponentDepth int    `default:"2" help:"Search depth for a search opponent"`
	Depth         int    `help:"Engine search depth (defaults to config)"`
	Seed          int64  `default:"0" help:"Batch RNG seed (0 derives one from the clock)"`
	Workers       int    `default:"0" help:"Parallel matches (0 = GOMAXPROCS)"`
	SwapSides     bool   `default:"true" negatable:"" help:"Play each pairing from both sides"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	depth := cfg.Game.SearchDepth
	if c.Depth > 0 {
		depth = c.Depth
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger, closer, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting simulation",
		"matches", c.Matches,
		"opponent", c.Opponent,
		"depth", depth,
		"seed", seed,
	)

	sim := simulator.New(simulator.Config{
		Matches:       c.Matches,
		Opponent:      c.Opponent,
		OpponentDepth: c.OpponentDepth,
		Depth:         depth,
		SeedsPerPit:   cfg.Game.SeedsPerPit,
		Seed:          seed,
		Workers:       c.Workers,
		SwapSides:     c.SwapSides,
		Logger:        logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Engine depth %d vs %s, seed %d (%s)\n\n", depth, c.Opponent, seed, time.Since(start).Round(time.Millisecond))
	fmt.Print(stats.Summary())
	return nil
}
