package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kalaha/game"
)

// Human reads pit numbers from an input stream, asking again on anything
// that is not a number or not a playable pit. An illegal move is a
// recoverable condition here, never an error.
type Human struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{scanner: bufio.NewScanner(in), out: out}
}

// ChooseMove prompts until it reads a legal pit, returning game.NoMove
// once the input stream ends.
func (h *Human) ChooseMove(b *game.Board, player int) int {
	for {
		fmt.Fprintf(h.out, "Player %d, choose a pit: ", player)
		if !h.scanner.Scan() {
			return game.NoMove
		}
		pit, err := strconv.Atoi(strings.TrimSpace(h.scanner.Text()))
		if err != nil {
			fmt.Fprintln(h.out, "Please enter a valid number.")
			continue
		}
		if !game.IsMoveLegal(b, player, pit) {
			fmt.Fprintln(h.out, "Invalid move. Try again.")
			continue
		}
		return pit
	}
}
