// Package kalah implements the rules of two-player Kalah: board
// representation, seed sowing, captures, and the extra-turn rule.
package kalah

import (
	"fmt"
	"strings"
)

// Board holds the seed count of every pit and store. The layout is
// fixed for the life of a game:
//
//	      13
//	    00  12
//	    01  11
//	    02  10
//	    03  09
//	    04  08
//	    05  07
//	      06
//
// Indices 0-5 are Side A's pits and 6 is its store. Indices 7-12 are
// Side B's pits and 13 is their store. Pit i faces pit 12-i across the
// board; that mapping drives the capture rule.
type Board [NumPositions]uint8

const (
	// NumPositions is the total number of pits and stores on the board.
	NumPositions = 14

	// PitsPerSide is the number of playable pits each side owns.
	PitsPerSide = 6

	// StoreA is the index of Side A's store.
	StoreA = 6

	// StoreB is the index of Side B's store.
	StoreB = 13

	// DefaultSeedsPerPit is the standard starting seed count.
	DefaultSeedsPerPit = 4
)

// PitsA and PitsB list each side's pits nearest-store first. The order
// doubles as the search engine's fixed move ordering, so it is both a
// pruning heuristic and the observable tie-break rule.
var (
	PitsA = [PitsPerSide]int{5, 4, 3, 2, 1, 0}
	PitsB = [PitsPerSide]int{12, 11, 10, 9, 8, 7}
)

// New returns a board with seedsPerPit seeds in every playable pit and
// both stores empty.
func New(seedsPerPit uint8) Board {
	var b Board
	for _, i := range PitsA {
		b[i] = seedsPerPit
	}
	for _, i := range PitsB {
		b[i] = seedsPerPit
	}
	return b
}

// NextIndex returns the index the next seed is sown into, following the
// cyclic order 0..13 but skipping the opponent's store: a Side A sow
// jumps from 12 to 0, a Side B sow jumps from 5 to 7. A side never
// deposits a seed in the opponent's store.
func NextIndex(index int, sideA bool) int {
	if index == 12 && sideA {
		return 0
	}
	if index == 5 && !sideA {
		return 7
	}
	return (index + 1) % NumPositions
}

// FacingIndex returns the pit directly opposite pit across the board.
func FacingIndex(pit int) int {
	return 12 - pit
}

// StoreFor returns the store index for a side.
func StoreFor(sideA bool) int {
	if sideA {
		return StoreA
	}
	return StoreB
}

// PitsFor returns a side's pits in the fixed nearest-store-first order.
func PitsFor(sideA bool) [PitsPerSide]int {
	if sideA {
		return PitsA
	}
	return PitsB
}

// OwnsPit reports whether pit is a playable pit belonging to the side.
func OwnsPit(pit int, sideA bool) bool {
	if sideA {
		return pit >= 0 && pit < StoreA
	}
	return pit > StoreA && pit < StoreB
}

// ApplyMove sows the seeds of pit around the board, mutating b in
// place, and reports whether the moving side takes another turn.
//
// The final seed decides the outcome: landing in the mover's own store
// grants an extra turn; landing in an empty pit on the mover's own side
// whose facing pit is non-empty captures that seed plus the facing
// pit's seeds into the mover's store; otherwise it is deposited
// normally and the turn passes.
//
// The pit must be a non-empty pit belonging to the moving side. Stores
// are never legal sources. Callers are responsible for legality; see
// Legal.
func (b *Board) ApplyMove(pit int) bool {
	sideA := pit < StoreA

	seeds := b[pit]
	b[pit] = 0

	for seeds > 1 {
		pit = NextIndex(pit, sideA)
		b[pit]++
		seeds--
	}

	pit = NextIndex(pit, sideA)

	// Last seed lands in a store
	if pit == StoreA || pit == StoreB {
		b[pit]++
		return true
	}

	// Last seed lands in an empty pit: steal the facing pit if it is
	// non-empty and the landing pit is on the mover's own side
	if b[pit] == 0 {
		facing := FacingIndex(pit)
		if b[facing] > 0 && (pit < StoreA) == sideA {
			b[StoreFor(sideA)] += 1 + b[facing]
			b[facing] = 0
			return false
		}
	}

	b[pit]++
	return false
}

// Legal reports whether pit is a legal move for the side: one of its
// own playable pits currently holding at least one seed.
func (b Board) Legal(pit int, sideA bool) bool {
	return OwnsPit(pit, sideA) && b[pit] > 0
}

// LegalMoves returns the side's legal moves in the fixed
// nearest-store-first order. It returns nil when the side cannot move.
func (b Board) LegalMoves(sideA bool) []int {
	var moves []int
	for _, pit := range PitsFor(sideA) {
		if b[pit] > 0 {
			moves = append(moves, pit)
		}
	}
	return moves
}

// HasLegalMove reports whether the side has at least one non-empty pit.
func (b Board) HasLegalMove(sideA bool) bool {
	for _, pit := range PitsFor(sideA) {
		if b[pit] > 0 {
			return true
		}
	}
	return false
}

// TotalSeeds returns the number of seeds on the board, stores included.
// Every legal move conserves this total.
func (b Board) TotalSeeds() int {
	total := 0
	for _, n := range b {
		total += int(n)
	}
	return total
}

// SideSeeds returns the number of unbanked seeds left in a side's pits.
func (b Board) SideSeeds(sideA bool) int {
	total := 0
	for _, pit := range PitsFor(sideA) {
		total += int(b[pit])
	}
	return total
}

// StoreDifference returns Side A's store minus Side B's store, the
// evaluation used throughout the engine. Positive favours Side A.
func (b Board) StoreDifference() int {
	return int(b[StoreA]) - int(b[StoreB])
}

// SweepSide banks every seed left in a side's pits into that side's
// store, the end-of-game rule once either player runs out of moves.
func (b *Board) SweepSide(sideA bool) {
	store := StoreFor(sideA)
	for _, pit := range PitsFor(sideA) {
		b[store] += b[pit]
		b[pit] = 0
	}
}

// String renders the board in the fixed two-column layout, Side B's
// store on top and Side A's store on the bottom.
func (b Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %02d\n", b[StoreB])
	for i := 0; i < PitsPerSide; i++ {
		fmt.Fprintf(&sb, "%02d  %02d\n", b[i], b[FacingIndex(i)])
	}
	fmt.Fprintf(&sb, "  %02d\n", b[StoreA])
	return sb.String()
}
