// Package game runs Kalah matches between agents: turn alternation,
// move validation, the end-of-game sweep, and per-move records.
package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/kalah-cli/kalah"
)

// MoveRecord captures a single applied move.
type MoveRecord struct {
	SideA     bool
	Pit       int
	PlayAgain bool
	Took      time.Duration
}

// MatchResult contains the outcome of a completed match. Winner is
// empty on a draw.
type MatchResult struct {
	Final  kalah.Board
	Moves  []MoveRecord
	StoreA int
	StoreB int
	Winner string
}

// Match drives a game between two agents. The live board is mutated
// only here; agents receive copies.
type Match struct {
	board       kalah.Board
	agentA      Agent
	agentB      Agent
	sideAToMove bool
	logger      *log.Logger
	clock       quartz.Clock
	totalSeeds  int
	moves       []MoveRecord
	maxMoves    int
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithClock injects the clock used to time agent decisions.
func WithClock(clock quartz.Clock) MatchOption {
	return func(m *Match) { m.clock = clock }
}

// WithFirstMover sets which side moves first. Side A by default.
func WithFirstMover(sideA bool) MatchOption {
	return func(m *Match) { m.sideAToMove = sideA }
}

// NewMatch creates a match on the given starting board. agentA plays
// Side A, agentB plays Side B.
func NewMatch(board kalah.Board, agentA, agentB Agent, logger *log.Logger, opts ...MatchOption) *Match {
	m := &Match{
		board:       board,
		agentA:      agentA,
		agentB:      agentB,
		sideAToMove: true,
		logger:      logger.WithPrefix("match"),
		clock:       quartz.NewReal(),
		totalSeeds:  board.TotalSeeds(),
		maxMoves:    10000,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Board returns a copy of the live board.
func (m *Match) Board() kalah.Board {
	return m.board
}

// SideAToMove reports whose turn it is.
func (m *Match) SideAToMove() bool {
	return m.sideAToMove
}

// Run plays the match to completion and returns the result.
func (m *Match) Run() (*MatchResult, error) {
	for len(m.moves) < m.maxMoves {
		if !m.board.HasLegalMove(m.sideAToMove) {
			return m.Finish()
		}

		agent := m.agentB
		if m.sideAToMove {
			agent = m.agentA
		}

		start := m.clock.Now()
		pit, ok := agent.ChooseMove(m.board, m.sideAToMove)
		took := m.clock.Since(start)

		if !ok {
			// The agent resigned a playable position; treat it the
			// same as running out of moves
			m.logger.Warn("agent offered no move", "agent", agent.Name(), "sideA", m.sideAToMove)
			return m.Finish()
		}

		again, err := m.ApplyMove(pit)
		if err != nil {
			return nil, fmt.Errorf("agent %s: %w", agent.Name(), err)
		}

		m.logger.Debug("move applied",
			"agent", agent.Name(),
			"pit", pit,
			"playAgain", again,
			"took", took,
		)
		m.moves[len(m.moves)-1].Took = took
	}
	return nil, fmt.Errorf("match exceeded %d moves", m.maxMoves)
}

// ApplyMove validates and plays a single move for the side to move,
// advancing the turn unless the move earned another one. External
// callers (the CLI's human turns) go through the same validation as
// agent moves.
func (m *Match) ApplyMove(pit int) (bool, error) {
	if !m.board.Legal(pit, m.sideAToMove) {
		return false, fmt.Errorf("illegal move: pit %d for side %s", pit, sideName(m.sideAToMove))
	}

	again := m.board.ApplyMove(pit)

	if total := m.board.TotalSeeds(); total != m.totalSeeds {
		return false, fmt.Errorf("seed conservation violated: had %d seeds, now %d", m.totalSeeds, total)
	}

	m.moves = append(m.moves, MoveRecord{
		SideA:     m.sideAToMove,
		Pit:       pit,
		PlayAgain: again,
	})

	if !again {
		m.sideAToMove = !m.sideAToMove
	}
	return again, nil
}

// GameOver reports whether the side to move has no legal move.
func (m *Match) GameOver() bool {
	return !m.board.HasLegalMove(m.sideAToMove)
}

// Finish applies the end-of-game sweep and scores the match: seeds
// left on the opponent's side go to the opponent's store. Callers
// driving turns manually invoke it once GameOver reports true.
func (m *Match) Finish() (*MatchResult, error) {
	m.board.SweepSide(!m.sideAToMove)

	result := &MatchResult{
		Final:  m.board,
		Moves:  m.moves,
		StoreA: int(m.board[kalah.StoreA]),
		StoreB: int(m.board[kalah.StoreB]),
	}
	switch {
	case result.StoreA > result.StoreB:
		result.Winner = m.agentA.Name()
	case result.StoreB > result.StoreA:
		result.Winner = m.agentB.Name()
	}

	m.logger.Info("match over",
		"storeA", result.StoreA,
		"storeB", result.StoreB,
		"winner", result.Winner,
		"moves", len(result.Moves),
	)
	return result, nil
}

func sideName(sideA bool) string {
	if sideA {
		return "A"
	}
	return "B"
}
