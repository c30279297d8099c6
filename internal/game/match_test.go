package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/kalah-cli/internal/randutil"
	"github.com/lox/kalah-cli/kalah"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestMatchSearchVsSearch(t *testing.T) {
	match := NewMatch(
		kalah.New(4),
		NewSearchAgent("deep", 4),
		NewSearchAgent("shallow", 2),
		testLogger(),
	)

	result, err := match.Run()
	require.NoError(t, err)

	// Every seed ends up banked once the final sweep runs
	assert.Equal(t, 48, result.StoreA+result.StoreB)
	assert.NotEmpty(t, result.Moves)
	if result.StoreA != result.StoreB {
		assert.NotEmpty(t, result.Winner)
	}
}

func TestMatchSearchVsRandom(t *testing.T) {
	match := NewMatch(
		kalah.New(4),
		NewSearchAgent("engine", 6),
		NewRandomAgent("random", randutil.New(1)),
		testLogger(),
	)

	result, err := match.Run()
	require.NoError(t, err)

	// Depth-6 search should not lose to uniform random play
	assert.GreaterOrEqual(t, result.StoreA, result.StoreB)
}

func TestMatchRejectsIllegalMove(t *testing.T) {
	match := NewMatch(
		kalah.New(4),
		NewScriptAgent("cheat", kalah.StoreA),
		NewSearchAgent("engine", 2),
		testLogger(),
	)

	_, err := match.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal move")
}

func TestMatchExtraTurnKeepsSide(t *testing.T) {
	match := NewMatch(
		kalah.New(4),
		NewSearchAgent("a", 1),
		NewSearchAgent("b", 1),
		testLogger(),
	)

	again, err := match.ApplyMove(2)
	require.NoError(t, err)
	assert.True(t, again)
	assert.True(t, match.SideAToMove())

	again, err = match.ApplyMove(5)
	require.NoError(t, err)
	assert.False(t, again)
	assert.False(t, match.SideAToMove())
}

func TestMatchEndSweep(t *testing.T) {
	var board kalah.Board
	board[5] = 1 // Side A's only move lands in its store
	board[9] = 3

	mock := quartz.NewMock(t)
	match := NewMatch(
		board,
		NewScriptAgent("a", 5),
		NewScriptAgent("b"),
		testLogger(),
		WithClock(mock),
	)

	result, err := match.Run()
	require.NoError(t, err)

	// A banks its seed, then has no move; B sweeps its three seeds
	assert.Equal(t, 1, result.StoreA)
	assert.Equal(t, 3, result.StoreB)
	assert.Equal(t, "b", result.Winner)
	assert.Len(t, result.Moves, 1)
}

func TestMatchFirstMoverOption(t *testing.T) {
	match := NewMatch(
		kalah.New(4),
		NewSearchAgent("a", 1),
		NewSearchAgent("b", 1),
		testLogger(),
		WithFirstMover(false),
	)

	assert.False(t, match.SideAToMove())
}

func TestRandomAgentPlaysLegalMoves(t *testing.T) {
	rng := randutil.New(99)
	agent := NewRandomAgent("random", rng)
	board := kalah.New(4)

	for i := 0; i < 100; i++ {
		pit, ok := agent.ChooseMove(board, true)
		require.True(t, ok)
		assert.True(t, board.Legal(pit, true))
	}

	var empty kalah.Board
	_, ok := agent.ChooseMove(empty, true)
	assert.False(t, ok)
}

func TestHumanAgentDrivenThroughMatch(t *testing.T) {
	// A human side never answers ChooseMove; its moves arrive through
	// ApplyMove and its name still wins the match
	var board kalah.Board
	board[12] = 1 // Side B's only move lands in its store

	match := NewMatch(
		board,
		NewScriptAgent("engine"),
		NewHumanAgent("you"),
		testLogger(),
		WithFirstMover(false),
	)

	_, ok := NewHumanAgent("you").ChooseMove(board, false)
	assert.False(t, ok, "a human placeholder must never offer a move")

	again, err := match.ApplyMove(12)
	require.NoError(t, err)
	assert.True(t, again)
	require.True(t, match.GameOver())

	result, err := match.Finish()
	require.NoError(t, err)
	assert.Equal(t, 1, result.StoreB)
	assert.Equal(t, 0, result.StoreA)
	assert.Equal(t, "you", result.Winner)
}

func TestSearchAgentReportsNoMove(t *testing.T) {
	var board kalah.Board
	board[8] = 2 // only Side B can move

	agent := NewSearchAgent("engine", 3)
	_, ok := agent.ChooseMove(board, true)
	assert.False(t, ok)
}
