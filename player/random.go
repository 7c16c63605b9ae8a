package player

import (
	"golang.org/x/exp/rand"

	"kalaha/game"
)

// Random plays a uniformly random legal move, the weakest baseline for
// strength experiments.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(b *game.Board, player int) int {
	moves := game.LegalMoves(b, player)
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[r.rng.Intn(len(moves))]
}
