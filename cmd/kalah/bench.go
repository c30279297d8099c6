package main

import (
	"fmt"
	"time"

	"github.com/lox/kalah-cli/internal/config"
	"github.com/lox/kalah-cli/internal/search"
	"github.com/lox/kalah-cli/kalah"
)

// BenchCmd searches the start position at increasing depths and
// reports node counts, cutoffs, and wall time.
type BenchCmd struct {
	MaxDepth    int `default:"14" help:"Deepest search to time"`
	SeedsPerPit int `help:"Seeds per pit (defaults to config)"`
}

func (c *BenchCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	seeds := cfg.Game.SeedsPerPit
	if c.SeedsPerPit > 0 {
		seeds = c.SeedsPerPit
	}

	board := kalah.New(uint8(seeds))

	fmt.Printf("%5s  %12s  %12s  %10s  %10s  %6s\n",
		"depth", "nodes", "leafs", "cutoffs", "time", "move")

	for depth := 1; depth <= c.MaxDepth; depth++ {
		s := search.New()
		start := time.Now()
		result := s.Search(board, true, depth)
		elapsed := time.Since(start)

		stats := s.Stats()
		fmt.Printf("%5d  %12d  %12d  %10d  %10s  %6d\n",
			depth, stats.Nodes, stats.Leafs, stats.Cutoffs,
			elapsed.Round(time.Microsecond), result.Move)
	}
	return nil
}
