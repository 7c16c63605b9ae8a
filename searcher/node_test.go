package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"kalaha/game"
)

func TestNewNode(t *testing.T) {
	t.Run("listing legal moves as untried", func(t *testing.T) {
		root := newNode(nil, game.NewDefaultBoard(), 0, game.NoMove)

		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, root.untried,
			"Should start with every legal move untried")
		require.Empty(t, root.children, "Should start without children")
		require.Zero(t, root.visits, "Should start unvisited")
	})

	t.Run("leaving terminal positions unexpandable", func(t *testing.T) {
		b := game.NewBoardFromPits(6, []int{0, 0, 0, 0, 0, 0, 24, 4, 4, 4, 4, 4, 4, 0})
		leaf := newNode(nil, b, 1, 3)

		require.Empty(t, leaf.untried, "A terminal node should have nothing to expand")
	})
}

func TestExpand(t *testing.T) {
	t.Run("expanding an untried move", func(t *testing.T) {
		root := newNode(nil, game.NewDefaultBoard(), 0, game.NoMove)

		child := root.expand(0)

		require.Equal(t, 0, child.move, "The child should record the move that created it")
		require.Same(t, root, child.parent, "The child should link back to its parent")
		require.Equal(t, 1, child.player, "The mover should alternate after a plain sow")
		require.Equal(t, []int{1, 2, 3, 4, 5}, root.untried, "The move should leave the untried list")
		require.Equal(t, []*node{child}, root.children, "The child should join the parent's children")
		require.Equal(t, 0, child.board.Stones(0), "The child board should reflect the move")
		require.Equal(t, 4, root.board.Stones(0), "The parent board should stay untouched")
	})

	t.Run("keeping the mover on an extra turn", func(t *testing.T) {
		root := newNode(nil, game.NewDefaultBoard(), 0, game.NoMove)

		child := root.expand(2)

		require.Equal(t, 0, child.player, "Landing in the own store should keep the same mover")
	})

	t.Run("panics on a move that is not untried", func(t *testing.T) {
		root := newNode(nil, game.NewDefaultBoard(), 0, game.NoMove)
		root.expand(0)

		require.Panics(t, func() { root.expand(0) }, "Should reject expanding the same move twice")
		require.Panics(t, func() { root.expand(99) }, "Should reject a move that was never untried")
	})
}

func TestSelectChild(t *testing.T) {
	t.Run("preferring an unvisited child", func(t *testing.T) {
		visited := &node{rewards: 1, visits: 1}
		unvisited := &node{}
		parent := &node{visits: 2, children: []*node{visited, unvisited}}

		got := parent.selectChild(DefaultExploration)

		require.Same(t, unvisited, got, "An unvisited child should be selected first")
	})

	t.Run("maximizing UCT over visited children", func(t *testing.T) {
		lower := &node{rewards: 5, visits: 10}
		higher := &node{rewards: 9, visits: 10}
		parent := &node{visits: 20, children: []*node{lower, higher}}

		got := parent.selectChild(DefaultExploration)

		require.Same(t, higher, got, "Equal visits should make rewards decide")
	})

	t.Run("exploring a rarely visited child", func(t *testing.T) {
		busy := &node{rewards: 90, visits: 100}
		rare := &node{rewards: 0, visits: 1}
		parent := &node{visits: 101, children: []*node{busy, rare}}

		got := parent.selectChild(DefaultExploration)

		require.Same(t, rare, got, "The exploration term should outweigh a zero mean")
	})

	t.Run("panics without children", func(t *testing.T) {
		leaf := &node{visits: 1}

		require.Panics(t, func() { leaf.selectChild(DefaultExploration) },
			"Should panic when there is nothing to select")
	})

	t.Run("panics with children but no visits", func(t *testing.T) {
		parent := &node{children: []*node{{}}}

		require.Panics(t, func() { parent.selectChild(DefaultExploration) },
			"Should panic when the parent was never visited")
	})
}

func TestUCB1(t *testing.T) {
	t.Run("computing the UCT value", func(t *testing.T) {
		normalizer := 2 * math.Log(100)
		got := ucb1(5.0, 10, normalizer)

		expected := 5.0/10 + math.Sqrt(2*math.Log(100)/10)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("unvisited children score infinite", func(t *testing.T) {
		require.True(t, math.IsInf(ucb1(0, 0, 1), 1), "Zero visits should score +Inf")
	})
}

func TestRollout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("scoring a win for the expanding mover", func(t *testing.T) {
		b := game.NewBoardFromPits(6, []int{0, 0, 0, 0, 0, 0, 30, 0, 0, 0, 0, 0, 0, 18})
		parent := &node{player: 0}
		leaf := newNode(parent, b, 1, 5)

		require.Equal(t, Win, leaf.rollout(rng), "Player 0's victory should score Win for player 0's move")
	})

	t.Run("scoring a defeat as Loss", func(t *testing.T) {
		b := game.NewBoardFromPits(6, []int{0, 0, 0, 0, 0, 0, 30, 0, 0, 0, 0, 0, 0, 18})
		parent := &node{player: 1}
		leaf := newNode(parent, b, 1, 5)

		require.Equal(t, Loss, leaf.rollout(rng), "Player 0's victory should score Loss for player 1's move")
	})

	t.Run("scoring a tie as Loss", func(t *testing.T) {
		b := game.NewBoardFromPits(6, []int{0, 0, 0, 0, 0, 0, 24, 0, 0, 0, 0, 0, 0, 24})
		parent := &node{player: 0}
		leaf := newNode(parent, b, 1, 5)

		require.Equal(t, Loss, leaf.rollout(rng), "A tie should score Loss")
	})

	t.Run("sweeping the rows before scoring", func(t *testing.T) {
		b := game.NewBoardFromPits(6, []int{0, 0, 0, 0, 0, 0, 10, 4, 4, 4, 4, 4, 4, 0})
		parent := &node{player: 1}
		leaf := newNode(parent, b, 0, 3)

		require.Equal(t, Win, leaf.rollout(rng),
			"Player 1's swept row should decide the game in their favor")
	})

	t.Run("playing a forced line to the end", func(t *testing.T) {
		b := game.NewBoardFromPits(6, []int{0, 0, 0, 0, 0, 1, 10, 1, 0, 0, 0, 0, 0, 30})
		parent := &node{player: 1}
		leaf := newNode(parent, b, 0, 4)

		require.Equal(t, Win, leaf.rollout(rng),
			"The forced sow should empty row 0 and leave player 1 ahead after the sweep")
	})

	t.Run("leaving the node's board untouched", func(t *testing.T) {
		parent := &node{player: 1}
		leaf := newNode(parent, game.NewDefaultBoard(), 0, 2)

		leaf.rollout(rng)

		require.Equal(t, game.NewDefaultBoard().Pits(), leaf.board.Pits(),
			"The rollout should play on a private clone")
	})
}

func TestBackpropagate(t *testing.T) {
	t.Run("flipping the result whenever the mover changes", func(t *testing.T) {
		root := &node{player: 0}
		a := &node{player: 1, parent: root}
		b := &node{player: 0, parent: a}

		b.backpropagate(Win)

		require.Equal(t, 1, b.visits, "Every node on the path should gain one visit")
		require.Equal(t, 1, a.visits, "Every node on the path should gain one visit")
		require.Equal(t, 1, root.visits, "Every node on the path should gain one visit")
		require.Equal(t, Win, b.rewards, "The leaf should bank the raw result")
		require.Equal(t, Loss, a.rewards, "The opponent's node should bank the flipped result")
		require.Equal(t, Win, root.rewards, "The root should bank the twice-flipped result")
	})

	t.Run("carrying the result through an extra turn", func(t *testing.T) {
		root := &node{player: 0}
		a := &node{player: 0, parent: root}
		b := &node{player: 1, parent: a}

		b.backpropagate(Win)

		require.Equal(t, Win, b.rewards)
		require.Equal(t, Loss, a.rewards, "The mover change between b and a should flip the result")
		require.Equal(t, Loss, root.rewards, "The shared mover between a and the root should not flip it")
	})

	t.Run("accumulating across passes", func(t *testing.T) {
		root := &node{player: 0}
		a := &node{player: 1, parent: root}

		a.backpropagate(Win)
		a.backpropagate(Win)
		a.backpropagate(Loss)

		require.Equal(t, 3, a.visits)
		require.Equal(t, 2.0, a.rewards, "Two wins and a loss should sum to 2")
		require.Equal(t, 3, root.visits)
		require.Equal(t, 1.0, root.rewards, "The root should bank the flipped results")
	})
}

func TestBestChild(t *testing.T) {
	t.Run("picking the most visited child", func(t *testing.T) {
		parent := &node{children: []*node{
			{move: 10, visits: 3},
			{move: 11, visits: 7},
			{move: 12, visits: 5},
		}}

		require.Equal(t, 11, parent.bestChild().move, "The robust child has the most visits")
	})

	t.Run("keeping the first child on a tie", func(t *testing.T) {
		parent := &node{children: []*node{
			{move: 10, visits: 7},
			{move: 11, visits: 7},
		}}

		require.Equal(t, 10, parent.bestChild().move, "Ties should go to the earlier child")
	})

	t.Run("panics without children", func(t *testing.T) {
		require.Panics(t, func() { (&node{}).bestChild() })
	})
}
