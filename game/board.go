package game

import (
	"fmt"
	"strings"
)

const (
	DefaultPitsPerPlayer = 6
	DefaultStonesPerPit  = 4
)

// Tie is the Winner value for a drawn game. It is never a player id.
const Tie = -1

// NoMove is returned by a player policy that cannot produce a move.
const NoMove = -1

// Board holds the stone counts of a Kalaha position as one flat slice:
// slots 0..P-1 are player 0's pits, slot P their store, slots P+1..2P
// player 1's pits and slot 2P+1 their store. Whose turn it is gets tracked
// by the caller, never by the board.
type Board struct {
	pits          []int
	pitsPerPlayer int
}

// NewBoard returns a starting position with stonesPerPit stones in every
// pit and empty stores. Panics on non-positive dimensions.
func NewBoard(pitsPerPlayer, stonesPerPit int) *Board {
	if pitsPerPlayer <= 0 {
		panic(fmt.Sprintf("pits per player must be positive, got %d", pitsPerPlayer))
	}
	if stonesPerPit <= 0 {
		panic(fmt.Sprintf("stones per pit must be positive, got %d", stonesPerPit))
	}

	b := &Board{
		pits:          make([]int, 2*pitsPerPlayer+2),
		pitsPerPlayer: pitsPerPlayer,
	}
	for pit := range b.pits {
		if pit != b.Store(0) && pit != b.Store(1) {
			b.pits[pit] = stonesPerPit
		}
	}
	return b
}

// NewDefaultBoard returns the standard 6-pit, 4-stone starting position.
func NewDefaultBoard() *Board {
	return NewBoard(DefaultPitsPerPlayer, DefaultStonesPerPit)
}

// NewBoardFromPits builds a board from an explicit slot layout, stores
// included. Panics if the layout does not match 2*pitsPerPlayer+2 slots.
func NewBoardFromPits(pitsPerPlayer int, pits []int) *Board {
	if pitsPerPlayer <= 0 {
		panic(fmt.Sprintf("pits per player must be positive, got %d", pitsPerPlayer))
	}
	if len(pits) != 2*pitsPerPlayer+2 {
		panic(fmt.Sprintf("board layout needs %d slots, got %d", 2*pitsPerPlayer+2, len(pits)))
	}

	b := &Board{
		pits:          make([]int, len(pits)),
		pitsPerPlayer: pitsPerPlayer,
	}
	copy(b.pits, pits)
	return b
}

// Clone returns a deep copy sharing no state with the receiver.
func (b *Board) Clone() *Board {
	pits := make([]int, len(b.pits))
	copy(pits, b.pits)
	return &Board{pits: pits, pitsPerPlayer: b.pitsPerPlayer}
}

func (b *Board) PitsPerPlayer() int {
	return b.pitsPerPlayer
}

// TotalPits counts every slot, the two stores included.
func (b *Board) TotalPits() int {
	return len(b.pits)
}

// Stones returns the count in one slot.
func (b *Board) Stones(pit int) int {
	return b.pits[pit]
}

// Store returns the index of player's store slot.
func (b *Board) Store(player int) int {
	mustPlayer(player)
	if player == 0 {
		return b.pitsPerPlayer
	}
	return 2*b.pitsPerPlayer + 1
}

// PlayerPits returns the indices of player's row, store excluded.
func (b *Board) PlayerPits(player int) []int {
	mustPlayer(player)
	pits := make([]int, 0, b.pitsPerPlayer)
	start := b.rowStart(player)
	for pit := start; pit < start+b.pitsPerPlayer; pit++ {
		pits = append(pits, pit)
	}
	return pits
}

// IsPlayerPit reports whether pit lies in player's row. Stores are not
// row pits.
func (b *Board) IsPlayerPit(player, pit int) bool {
	mustPlayer(player)
	start := b.rowStart(player)
	return pit >= start && pit < start+b.pitsPerPlayer
}

// Opposite returns the pit directly across the board, the one captured
// from when the last sown stone lands in an empty own pit.
func (b *Board) Opposite(pit int) int {
	return len(b.pits) - 2 - pit
}

// TotalStones sums every slot. Constant for the lifetime of a game.
func (b *Board) TotalStones() int {
	total := 0
	for _, stones := range b.pits {
		total += stones
	}
	return total
}

// Pits returns a copy of all slot counts in board order.
func (b *Board) Pits() []int {
	pits := make([]int, len(b.pits))
	copy(pits, b.pits)
	return pits
}

func (b *Board) String() string {
	var sb strings.Builder
	for player := 0; player <= 1; player++ {
		if player == 1 {
			sb.WriteString(" / ")
		}
		for _, pit := range b.PlayerPits(player) {
			fmt.Fprintf(&sb, "%d ", b.pits[pit])
		}
		fmt.Fprintf(&sb, "[%d]", b.pits[b.Store(player)])
	}
	return sb.String()
}

func (b *Board) rowStart(player int) int {
	if player == 0 {
		return 0
	}
	return b.pitsPerPlayer + 1
}

// Opponent returns the other player's id.
func Opponent(player int) int {
	mustPlayer(player)
	return 1 - player
}

func mustPlayer(player int) {
	if player != 0 && player != 1 {
		panic(fmt.Sprintf("player must be 0 or 1, got %d", player))
	}
}
