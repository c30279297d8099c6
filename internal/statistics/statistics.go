// Package statistics aggregates simulated match outcomes.
package statistics

import (
	"fmt"
	"math"
	"strings"
)

// MatchResult is the outcome of a single simulated match from the
// engine's perspective.
type MatchResult struct {
	Margin      int   // engine store minus opponent store
	Moves       int   // moves played across both sides
	Seed        int64 // RNG seed for this match (for replay)
	EngineSideA bool  // which side the engine played
}

// SideStats tracks results for one side assignment.
type SideStats struct {
	Matches int
	Wins    int
}

// Statistics tracks aggregate results across a batch of matches.
type Statistics struct {
	Matches int
	Wins    int
	Draws   int
	Losses  int

	SumMargin  float64
	SumMargin2 float64 // sum of squares for variance
	MaxMargin  int
	MinMargin  int

	TotalMoves int

	// Side split, to surface first-mover bias
	AsSideA SideStats
	AsSideB SideStats
}

// Add folds one match result into the aggregate.
func (s *Statistics) Add(result MatchResult) {
	if s.Matches == 0 {
		s.MaxMargin = result.Margin
		s.MinMargin = result.Margin
	}

	s.Matches++
	s.SumMargin += float64(result.Margin)
	s.SumMargin2 += float64(result.Margin) * float64(result.Margin)
	s.TotalMoves += result.Moves

	if result.Margin > s.MaxMargin {
		s.MaxMargin = result.Margin
	}
	if result.Margin < s.MinMargin {
		s.MinMargin = result.Margin
	}

	side := &s.AsSideB
	if result.EngineSideA {
		side = &s.AsSideA
	}
	side.Matches++

	switch {
	case result.Margin > 0:
		s.Wins++
		side.Wins++
	case result.Margin < 0:
		s.Losses++
	default:
		s.Draws++
	}
}

// Mean returns the average winning margin per match.
func (s *Statistics) Mean() float64 {
	if s.Matches == 0 {
		return 0
	}
	return s.SumMargin / float64(s.Matches)
}

// Variance returns the sample variance of the margins.
func (s *Statistics) Variance() float64 {
	if s.Matches < 2 {
		return 0
	}
	n := float64(s.Matches)
	return (s.SumMargin2 - s.SumMargin*s.SumMargin/n) / (n - 1)
}

// StdDev returns the sample standard deviation of the margins.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// WinRate returns the fraction of matches won, draws counting as
// neither win nor loss.
func (s *Statistics) WinRate() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Matches)
}

// AverageMoves returns the mean match length.
func (s *Statistics) AverageMoves() float64 {
	if s.Matches == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Matches)
}

// Validate checks internal consistency of the aggregate.
func (s *Statistics) Validate() error {
	if s.Wins+s.Draws+s.Losses != s.Matches {
		return fmt.Errorf("result counts %d+%d+%d do not sum to %d matches",
			s.Wins, s.Draws, s.Losses, s.Matches)
	}
	if s.AsSideA.Matches+s.AsSideB.Matches != s.Matches {
		return fmt.Errorf("side splits %d+%d do not sum to %d matches",
			s.AsSideA.Matches, s.AsSideB.Matches, s.Matches)
	}
	return nil
}

// Summary renders a human-readable report.
func (s *Statistics) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matches:     %d (W %d / D %d / L %d)\n", s.Matches, s.Wins, s.Draws, s.Losses)
	fmt.Fprintf(&sb, "Win rate:    %.1f%%\n", s.WinRate()*100)
	fmt.Fprintf(&sb, "Margin:      %.2f ± %.2f (min %d, max %d)\n", s.Mean(), s.StdDev(), s.MinMargin, s.MaxMargin)
	fmt.Fprintf(&sb, "Avg moves:   %.1f\n", s.AverageMoves())
	if s.AsSideA.Matches > 0 && s.AsSideB.Matches > 0 {
		fmt.Fprintf(&sb, "As side A:   %d/%d wins\n", s.AsSideA.Wins, s.AsSideA.Matches)
		fmt.Fprintf(&sb, "As side B:   %d/%d wins\n", s.AsSideB.Wins, s.AsSideB.Matches)
	}
	return sb.String()
}
