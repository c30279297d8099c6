// Package simulator runs batches of Kalah matches to measure engine
// strength against baseline opponents.
package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/kalah-cli/internal/game"
	"github.com/lox/kalah-cli/internal/randutil"
	"github.com/lox/kalah-cli/internal/statistics"
	"github.com/lox/kalah-cli/kalah"
)

// Config holds configuration for a simulation batch.
type Config struct {
	Matches       int
	Opponent      string // "random" or "search"
	OpponentDepth int    // used when Opponent is "search"
	Depth         int    // engine search depth
	SeedsPerPit   int
	Seed          int64
	Workers       int  // parallel matches; defaults to GOMAXPROCS
	SwapSides     bool // play each pairing twice with sides swapped
	Logger        *log.Logger
}

// Simulator plays engine-vs-opponent matches and aggregates results.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.SeedsPerPit <= 0 {
		config.SeedsPerPit = kalah.DefaultSeedsPerPit
	}
	return &Simulator{config: config}
}

// Run executes the batch. Matches run in parallel but each match is
// itself single-threaded, and every match derives its own RNG from the
// batch seed so runs replay deterministically regardless of worker
// count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	perPairing := 1
	if s.config.SwapSides {
		perPairing = 2
	}

	results := make([]statistics.MatchResult, s.config.Matches*perPairing)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Matches; i++ {
		matchSeed := s.config.Seed + int64(i)

		for j := 0; j < perPairing; j++ {
			idx := i*perPairing + j
			engineSideA := j == 0

			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				result, err := s.playMatch(matchSeed, engineSideA)
				if err != nil {
					return fmt.Errorf("match %d (seed %d): %w", idx, matchSeed, err)
				}
				results[idx] = result
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playMatch runs one engine-vs-opponent match. The engine plays Side A
// when engineSideA is set, the opponent takes the other side, and Side
// A always moves first.
func (s *Simulator) playMatch(seed int64, engineSideA bool) (statistics.MatchResult, error) {
	engine := game.NewSearchAgent("engine", s.config.Depth)

	opponent, err := s.newOpponent(seed)
	if err != nil {
		return statistics.MatchResult{}, err
	}

	agentA, agentB := game.Agent(engine), opponent
	if !engineSideA {
		agentA, agentB = opponent, game.Agent(engine)
	}

	match := game.NewMatch(kalah.New(uint8(s.config.SeedsPerPit)), agentA, agentB, s.config.Logger)
	result, err := match.Run()
	if err != nil {
		return statistics.MatchResult{}, err
	}

	margin := result.StoreA - result.StoreB
	if !engineSideA {
		margin = -margin
	}

	return statistics.MatchResult{
		Margin:      margin,
		Moves:       len(result.Moves),
		Seed:        seed,
		EngineSideA: engineSideA,
	}, nil
}

func (s *Simulator) newOpponent(seed int64) (game.Agent, error) {
	switch s.config.Opponent {
	case "", "random":
		return game.NewRandomAgent("random", randutil.New(seed)), nil
	case "search":
		return game.NewSearchAgent("opponent", s.config.OpponentDepth), nil
	default:
		return nil, fmt.Errorf("unknown opponent type %q", s.config.Opponent)
	}
}
