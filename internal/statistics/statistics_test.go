package statistics

import (
	"math"
	"testing"
)

func TestEmptyStatistics(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Mean() = %f, want 0", stats.Mean())
	}
	if stats.StdDev() != 0 {
		t.Errorf("StdDev() = %f, want 0", stats.StdDev())
	}
	if stats.WinRate() != 0 {
		t.Errorf("WinRate() = %f, want 0", stats.WinRate())
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestAddAndAggregates(t *testing.T) {
	stats := &Statistics{}
	stats.Add(MatchResult{Margin: 10, Moves: 30, EngineSideA: true})
	stats.Add(MatchResult{Margin: -4, Moves: 40, EngineSideA: false})
	stats.Add(MatchResult{Margin: 0, Moves: 50, EngineSideA: true})
	stats.Add(MatchResult{Margin: 6, Moves: 20, EngineSideA: false})

	if stats.Matches != 4 {
		t.Errorf("Matches = %d, want 4", stats.Matches)
	}
	if stats.Wins != 2 || stats.Draws != 1 || stats.Losses != 1 {
		t.Errorf("W/D/L = %d/%d/%d, want 2/1/1", stats.Wins, stats.Draws, stats.Losses)
	}
	if got := stats.Mean(); got != 3 {
		t.Errorf("Mean() = %f, want 3", got)
	}
	if got := stats.WinRate(); got != 0.5 {
		t.Errorf("WinRate() = %f, want 0.5", got)
	}
	if got := stats.AverageMoves(); got != 35 {
		t.Errorf("AverageMoves() = %f, want 35", got)
	}
	if stats.MaxMargin != 10 || stats.MinMargin != -4 {
		t.Errorf("margin bounds = %d/%d, want 10/-4", stats.MaxMargin, stats.MinMargin)
	}
	if stats.AsSideA.Matches != 2 || stats.AsSideA.Wins != 1 {
		t.Errorf("side A split = %d/%d, want 1/2", stats.AsSideA.Wins, stats.AsSideA.Matches)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestVariance(t *testing.T) {
	stats := &Statistics{}
	for _, margin := range []int{2, 4, 6} {
		stats.Add(MatchResult{Margin: margin})
	}

	// Sample variance of {2,4,6} is 4
	if got := stats.Variance(); math.Abs(got-4) > 1e-9 {
		t.Errorf("Variance() = %f, want 4", got)
	}
	if got := stats.StdDev(); math.Abs(got-2) > 1e-9 {
		t.Errorf("StdDev() = %f, want 2", got)
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	stats := &Statistics{}
	stats.Add(MatchResult{Margin: 1, EngineSideA: true})
	stats.Wins++

	if err := stats.Validate(); err == nil {
		t.Error("Validate() accepted inconsistent counts")
	}
}
