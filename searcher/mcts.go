package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"kalaha/game"
)

type Option func(m *MCTS)

// MCTS picks moves by building a fresh statistics tree for every decision:
// within its budget it selects a leaf by UCT, expands one untried move,
// plays a random rollout and backpropagates the outcome. The returned move
// is the root child with the most visits.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	rng         *rand.Rand
	collector   MetricsCollector
}

// WithIterations caps the number of simulations per decision.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration caps the wall-clock time per decision. The budget is
// checked between iterations, never inside one.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration overrides the UCT exploration weight.
func WithExploration(weight float64) Option {
	return func(m *MCTS) {
		if weight > 0 {
			m.exploration = weight
		}
	}
}

// WithSeed fixes the random source so repeated runs on the same position
// pick the same move.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCollector installs a search-metrics collector.
func WithCollector(collector MetricsCollector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.collector = collector
		}
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		collector:   NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		panic("Must specify search iterations or duration")
	}
	return m
}

// Decide searches the position and returns the pit player should sow, or
// game.NoMove when player has no legal move. The tree is discarded when
// the call returns; nothing persists between decisions.
func (m *MCTS) Decide(b *game.Board, player int) (int, SearchMetric) {
	m.collector.Start()

	root := newNode(nil, b.Clone(), player, game.NoMove)
	if len(root.untried) == 0 {
		return game.NoMove, m.collector.Complete()
	}

	start := time.Now()
	for i := 0; m.iterations <= 0 || i < m.iterations; i++ {
		// The first iteration always runs so the root has a child.
		if i > 0 && m.duration > 0 && time.Since(start) >= m.duration {
			break
		}

		// Selection
		node := root
		depth := 0
		for len(node.untried) == 0 && len(node.children) > 0 {
			node = node.selectChild(m.exploration)
			depth++
		}

		// Expansion, skipped on terminal nodes
		if len(node.untried) > 0 {
			node = node.expand(node.untried[m.rng.Intn(len(node.untried))])
			depth++
			m.collector.AddExpansion()
		}

		// Simulation and backpropagation
		node.backpropagate(node.rollout(m.rng))

		m.collector.ObserveDepth(depth)
		m.collector.AddIteration()
	}

	m.collector.SetRootVisits(root.visits)
	return root.bestChild().move, m.collector.Complete()
}

// ChooseMove implements the player policy contract over Decide.
func (m *MCTS) ChooseMove(b *game.Board, player int) int {
	move, _ := m.Decide(b, player)
	return move
}
