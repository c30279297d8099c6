package game

import (
	rand "math/rand/v2"

	"github.com/lox/kalah-cli/internal/search"
	"github.com/lox/kalah-cli/kalah"
)

// Agent chooses moves for one side of the board.
type Agent interface {
	Name() string
	// ChooseMove returns the pit to play for the given side, or
	// ok=false when the agent has no move to offer.
	ChooseMove(board kalah.Board, sideA bool) (pit int, ok bool)
}

// SearchAgent picks moves with fixed-depth alpha-beta search.
type SearchAgent struct {
	name     string
	depth    int
	searcher *search.Searcher
	lastEval int
}

// NewSearchAgent creates a search-backed agent playing at the given
// depth.
func NewSearchAgent(name string, depth int) *SearchAgent {
	return &SearchAgent{
		name:     name,
		depth:    depth,
		searcher: search.New(),
	}
}

func (a *SearchAgent) Name() string {
	return a.name
}

// ChooseMove runs a search from the position. ok is false when the
// side has no legal move.
func (a *SearchAgent) ChooseMove(board kalah.Board, sideA bool) (int, bool) {
	result := a.searcher.Search(board, sideA, a.depth)
	a.lastEval = result.Eval
	if !result.HasMove() {
		return 0, false
	}
	return result.Move, true
}

// LastEval returns the evaluation of the last search, positive
// favouring Side A.
func (a *SearchAgent) LastEval() int {
	return a.lastEval
}

// Stats exposes the underlying searcher's node counters.
func (a *SearchAgent) Stats() search.Stats {
	return a.searcher.Stats()
}

// RandomAgent plays a uniformly random legal move, the baseline
// opponent for simulations.
type RandomAgent struct {
	name string
	rng  *rand.Rand
}

// NewRandomAgent creates a random agent using the provided RNG.
func NewRandomAgent(name string, rng *rand.Rand) *RandomAgent {
	return &RandomAgent{name: name, rng: rng}
}

func (a *RandomAgent) Name() string {
	return a.name
}

func (a *RandomAgent) ChooseMove(board kalah.Board, sideA bool) (int, bool) {
	moves := board.LegalMoves(sideA)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[a.rng.IntN(len(moves))], true
}

// HumanAgent stands in for a person whose moves arrive through
// Match.ApplyMove at the UI boundary. The match loop never consults
// it; the name is only used for logging and winner attribution.
type HumanAgent struct {
	name string
}

// NewHumanAgent creates a placeholder agent for an externally driven
// side.
func NewHumanAgent(name string) *HumanAgent {
	return &HumanAgent{name: name}
}

func (a *HumanAgent) Name() string {
	return a.name
}

func (a *HumanAgent) ChooseMove(kalah.Board, bool) (int, bool) {
	return 0, false
}

// ScriptAgent replays a fixed list of pits, for scripted scenarios and
// tests.
type ScriptAgent struct {
	name  string
	moves []int
	next  int
}

// NewScriptAgent creates an agent that plays the given pits in order
// and reports no move once the script is exhausted.
func NewScriptAgent(name string, moves ...int) *ScriptAgent {
	return &ScriptAgent{name: name, moves: moves}
}

func (a *ScriptAgent) Name() string {
	return a.name
}

func (a *ScriptAgent) ChooseMove(kalah.Board, bool) (int, bool) {
	if a.next >= len(a.moves) {
		return 0, false
	}
	pit := a.moves[a.next]
	a.next++
	return pit, true
}
