package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"kalaha/game"
	"kalaha/utils"
)

// Reward scale for simulation outcomes. Ties score as Loss.
const (
	Win  = 1.0
	Loss = 0.0
)

// DefaultExploration is the UCT exploration weight.
const DefaultExploration = math.Sqrt2

// node is one position in the search tree: an owned board snapshot, the
// player to move from it, and the statistics gathered by simulations
// passing through it. The parent link is only read walking upward;
// children own their subtrees.
type node struct {
	board    *game.Board
	player   int
	parent   *node
	move     int
	children []*node
	untried  []int
	rewards  float64
	visits   int
}

// newNode snapshots a position. A terminal position gets no untried
// moves; selection stops on it and the rollout re-scores it.
func newNode(parent *node, board *game.Board, player, move int) *node {
	var untried []int
	if !game.IsTerminal(board) {
		untried = game.LegalMoves(board, player)
	}
	return &node{
		board:   board,
		player:  player,
		parent:  parent,
		move:    move,
		untried: untried,
	}
}

// expand plays one untried move on a clone of the board and appends the
// resulting child. The mover stays on an extra turn and alternates
// otherwise.
func (n *node) expand(pit int) *node {
	i := utils.FindIndex(n.untried, pit)
	if i < 0 {
		panic(fmt.Sprintf("pit %d is not an untried move", pit))
	}

	board := n.board.Clone()
	extraTurn, err := game.ApplyMove(board, n.player, pit)
	if err != nil {
		panic(fmt.Sprintf("untried move rejected by the rules: %v", err))
	}
	player := n.player
	if !extraTurn {
		player = game.Opponent(n.player)
	}

	child := newNode(n, board, player, pit)
	n.untried = utils.RemoveAt(n.untried, i)
	n.children = append(n.children, child)
	return child
}

// selectChild returns the child maximizing UCT. Selection maximizes at
// every depth; adversarial alternation lives in the backpropagation flips.
func (n *node) selectChild(exploration float64) *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	normalizer := exploration * exploration * math.Log(float64(n.visits))

	var best *node
	maxScore := math.Inf(-1)
	for _, child := range n.children {
		score := ucb1(child.rewards, child.visits, normalizer)
		if math.IsInf(score, 1) { // Unvisited children go first
			return child
		}
		if score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

// ucb1 = q/n + sqrt(c^2*ln(N)/n), +Inf for unvisited children.
func ucb1(rewards float64, visits int, normalizer float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/float64(visits) + math.Sqrt(normalizer/float64(visits))
}

// rollout plays uniformly random legal moves on a private clone until the
// game ends, then scores the outcome for the player whose move created
// this node: Win for their victory, Loss for a defeat or a tie.
func (n *node) rollout(rng *rand.Rand) float64 {
	board := n.board.Clone()
	player := n.player

	for !game.IsTerminal(board) {
		moves := game.LegalMoves(board, player)
		if len(moves) == 0 {
			break
		}
		extraTurn, err := game.ApplyMove(board, player, moves[rng.Intn(len(moves))])
		if err != nil {
			panic(fmt.Sprintf("rollout move rejected by the rules: %v", err))
		}
		if !extraTurn {
			player = game.Opponent(player)
		}
	}

	game.Finalize(board)
	if game.Winner(board) == n.parent.player {
		return Win
	}
	return Loss
}

// backpropagate adds one simulation outcome to every node on the path up
// to the root, flipping the carried reward whenever the mover changes
// between a node and its parent. Each node is updated exactly once per
// pass, ties included.
func (n *node) backpropagate(result float64) {
	for cur := n; cur != nil; cur = cur.parent {
		cur.visits++
		cur.rewards += result
		if cur.parent != nil && cur.parent.player != cur.player {
			result = Win - result
		}
	}
}

// bestChild returns the robust child: most visits, first one on ties.
func (n *node) bestChild() *node {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best
}
