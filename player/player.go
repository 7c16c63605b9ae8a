package player

import "kalaha/game"

// Player is any policy that picks the next pit to sow for a side. A
// policy that cannot produce a move returns game.NoMove.
type Player interface {
	ChooseMove(b *game.Board, player int) int
}
