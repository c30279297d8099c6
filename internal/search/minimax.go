// Package search finds the best Kalah move with fixed-depth minimax
// and alpha-beta pruning. Side A maximises, Side B minimises, and the
// evaluation is always Side A's store minus Side B's store.
package search

import (
	"math"

	"github.com/lox/kalah-cli/kalah"
)

// NoMove is returned when the side to move has no legal move, i.e. the
// game is over at the root.
const NoMove = -1

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 20

// Sentinels for the alpha-beta window. Any reachable evaluation is
// bounded by the seeds in play, so half of the int32 range leaves
// plenty of headroom without risking overflow on widening.
const (
	evalMin = math.MinInt32 / 2
	evalMax = math.MaxInt32 / 2
)

// Result is a search outcome: the evaluation of the position and the
// pit that achieves it. Move is NoMove when no legal move exists.
type Result struct {
	Eval int
	Move int
}

// HasMove reports whether the search found a legal move.
func (r Result) HasMove() bool {
	return r.Move != NoMove
}

// Stats counts work done by a search.
type Stats struct {
	Nodes   int // interior nodes visited
	Leafs   int // depth-0 evaluations
	Cutoffs int // beta cutoffs taken
	Sweeps  int // terminal no-move positions reached
}

// Searcher runs fixed-depth searches and accumulates Stats across
// calls. It holds no position state; every call owns private board
// copies, so the zero cost of copying a 14-byte array replaces any
// undo logic.
type Searcher struct {
	stats Stats
}

// New returns a Searcher with zeroed stats.
func New() *Searcher {
	return &Searcher{}
}

// Stats returns the counters accumulated since the Searcher was
// created or last reset.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// ResetStats zeroes the accumulated counters.
func (s *Searcher) ResetStats() {
	s.stats = Stats{}
}

// Search evaluates the position to the given depth and returns the
// best move for the side to move. The caller's board is never
// mutated.
func (s *Searcher) Search(board kalah.Board, sideA bool, depth int) Result {
	eval, move := s.minimax(board, sideA, depth, evalMin, evalMax)
	return Result{Eval: eval, Move: move}
}

// minimax explores candidate pits nearest-store-first, recursing with
// the side to move recomputed as the current side when the move grants
// an extra turn and the opposite side otherwise. Equal evaluations
// keep the earlier candidate, so the fixed ordering is also the
// tie-break rule.
func (s *Searcher) minimax(board kalah.Board, sideA bool, depth, alpha, beta int) (int, int) {
	if depth == 0 {
		s.stats.Leafs++
		return board.StoreDifference(), NoMove
	}
	s.stats.Nodes++

	bestEval := evalMax
	if sideA {
		bestEval = evalMin
	}
	bestMove := NoMove

	for _, pit := range kalah.PitsFor(sideA) {
		if board[pit] == 0 {
			continue
		}

		child := board
		playAgain := child.ApplyMove(pit)

		nextSideA := sideA
		if !playAgain {
			nextSideA = !sideA
		}

		eval, _ := s.minimax(child, nextSideA, depth-1, alpha, beta)

		if sideA {
			if eval > bestEval {
				bestEval, bestMove = eval, pit
			}
			if eval > alpha {
				alpha = eval
			}
		} else {
			if eval < bestEval {
				bestEval, bestMove = eval, pit
			}
			if eval < beta {
				beta = eval
			}
		}

		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	// No playable pit: the game ends here and the opponent banks the
	// seeds left on their side before the stores are compared
	if bestMove == NoMove {
		s.stats.Sweeps++
		return sweepEval(board, sideA), NoMove
	}

	return bestEval, bestMove
}

// sweepEval scores a position where the side to move cannot move.
func sweepEval(board kalah.Board, sideA bool) int {
	eval := board.StoreDifference()
	if sideA {
		eval -= board.SideSeeds(false)
	} else {
		eval += board.SideSeeds(true)
	}
	return eval
}
