package display

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"kalaha/game"
)

// Renderer prints boards and results for a terminal, coloring them when
// the terminal supports it and falling back to plain text when it does
// not.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

// Board lays the position out the way the players sit at it: player 1's
// row on top running right to left, the stores on the flanks, player 0's
// row beneath, and a pit-index footer for move entry.
func (r *Renderer) Board(b *game.Board) string {
	var sb strings.Builder
	top := b.PlayerPits(1)
	bottom := b.PlayerPits(0)

	sb.WriteString("\n")
	sb.WriteString(r.name(1))
	sb.WriteString(" (top):\n  ")
	for i := len(top) - 1; i >= 0; i-- {
		sb.WriteString(r.cell(b.Stones(top[i]), 1))
	}
	sb.WriteString("\n")

	sb.WriteString(r.store(b.Stones(b.Store(1))))
	sb.WriteString(strings.Repeat(" ", 3*b.PitsPerPlayer()))
	sb.WriteString(r.store(b.Stones(b.Store(0))))
	sb.WriteString("\n  ")

	for _, pit := range bottom {
		sb.WriteString(r.cell(b.Stones(pit), 0))
	}
	sb.WriteString("\n")
	sb.WriteString(r.name(0))
	sb.WriteString(" (bottom)\n")

	sb.WriteString("\nPit indices:\n  ")
	for i := len(top) - 1; i >= 0; i-- {
		sb.WriteString(r.index(top[i]))
	}
	sb.WriteString("\n  ")
	for _, pit := range bottom {
		sb.WriteString(r.index(pit))
	}
	sb.WriteString("\n\n")

	return sb.String()
}

// Welcome returns the banner shown before the first move.
func (r *Renderer) Welcome() string {
	return r.out.String("Welcome to Kalaha!").Bold().String() + "\n"
}

// ExtraTurn returns the notice shown when a player goes again.
func (r *Renderer) ExtraTurn(player int) string {
	return fmt.Sprintf("%s gets another turn!\n", r.name(player))
}

// GameOver returns the result banner and the final score line. The board
// must be finalized so the stores hold every stone.
func (r *Renderer) GameOver(b *game.Board) string {
	var headline string
	if winner := game.Winner(b); winner == game.Tie {
		headline = "Game over! It's a tie!"
	} else {
		headline = fmt.Sprintf("Game over! Player %d wins!", winner)
	}

	return fmt.Sprintf("%s\nFinal score - Player 0: %d, Player 1: %d\n",
		r.out.String(headline).Bold().String(),
		b.Stones(b.Store(0)),
		b.Stones(b.Store(1)))
}

func (r *Renderer) cell(stones, player int) string {
	return r.out.String(fmt.Sprintf("%2d ", stones)).
		Foreground(r.playerColor(player)).
		String()
}

func (r *Renderer) store(stones int) string {
	return r.out.String(fmt.Sprintf("%2d", stones)).Bold().String()
}

func (r *Renderer) index(pit int) string {
	return r.out.String(fmt.Sprintf("%2d ", pit)).Faint().String()
}

func (r *Renderer) name(player int) string {
	return r.out.String(fmt.Sprintf("Player %d", player)).
		Foreground(r.playerColor(player)).
		String()
}

func (r *Renderer) playerColor(player int) termenv.Color {
	if player == 0 {
		return r.out.Color("11") // yellow
	}
	return r.out.Color("12") // blue
}
