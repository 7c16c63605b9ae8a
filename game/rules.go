package game

import (
	"errors"
	"fmt"
)

// ErrInvalidMove reports a move that is not legal for the mover: a pit
// outside their row, an empty pit, or an unknown player id.
var ErrInvalidMove = errors.New("invalid move")

// LegalMoves returns the pits player may sow from, in board order: the
// nonempty pits of their own row. Nil when the row is empty.
func LegalMoves(b *Board, player int) []int {
	var moves []int
	for _, pit := range b.PlayerPits(player) {
		if b.pits[pit] > 0 {
			moves = append(moves, pit)
		}
	}
	return moves
}

// IsMoveLegal reports whether pit is a nonempty pit in player's row.
func IsMoveLegal(b *Board, player, pit int) bool {
	if player != 0 && player != 1 {
		return false
	}
	return b.IsPlayerPit(player, pit) && b.pits[pit] > 0
}

// ApplyMove lifts every stone from pit and sows them one per slot going
// counterclockwise, skipping the opponent's store. It reports whether the
// mover earned an extra turn by landing in their own store. Landing in a
// previously empty own pit captures the opposite pit's stones, plus the
// landing stone, into the mover's store, but only when the opposite pit
// holds any.
//
// An illegal move leaves the board untouched and returns an error wrapping
// ErrInvalidMove.
func ApplyMove(b *Board, player, pit int) (bool, error) {
	if !IsMoveLegal(b, player, pit) {
		return false, fmt.Errorf("player %d cannot sow pit %d: %w", player, pit, ErrInvalidMove)
	}

	stones := b.pits[pit]
	b.pits[pit] = 0

	opponentStore := b.Store(Opponent(player))
	current := pit
	for stones > 0 {
		current = (current + 1) % len(b.pits)
		if current == opponentStore {
			current = (current + 1) % len(b.pits)
		}
		b.pits[current]++
		stones--
	}

	// Landing in the own store grants another turn.
	if current == b.Store(player) {
		return true, nil
	}

	// Landing in an empty own pit captures the opposite pit.
	if b.IsPlayerPit(player, current) && b.pits[current] == 1 {
		opposite := b.Opposite(current)
		if b.pits[opposite] > 0 {
			b.pits[b.Store(player)] += b.pits[opposite] + 1
			b.pits[current] = 0
			b.pits[opposite] = 0
		}
	}
	return false, nil
}

// IsTerminal reports whether the game is over: either player's row has run
// out of stones.
func IsTerminal(b *Board) bool {
	return rowEmpty(b, 0) || rowEmpty(b, 1)
}

// Finalize sweeps the stones remaining in each row into that row owner's
// store. Idempotent once the rows are empty.
func Finalize(b *Board) {
	for player := 0; player <= 1; player++ {
		store := b.Store(player)
		for _, pit := range b.PlayerPits(player) {
			b.pits[store] += b.pits[pit]
			b.pits[pit] = 0
		}
	}
}

// Winner compares the two stores: the strictly larger one wins, equal
// stores yield Tie. Call Finalize first so swept rows count.
func Winner(b *Board) int {
	score0 := b.pits[b.Store(0)]
	score1 := b.pits[b.Store(1)]

	switch {
	case score0 > score1:
		return 0
	case score1 > score0:
		return 1
	default:
		return Tie
	}
}

func rowEmpty(b *Board, player int) bool {
	for _, pit := range b.PlayerPits(player) {
		if b.pits[pit] > 0 {
			return false
		}
	}
	return true
}
