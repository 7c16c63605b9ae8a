package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kalaha/experiments/metrics"
	"kalaha/player"
	"kalaha/searcher"
)

func TestNewPlayer(t *testing.T) {
	t.Run("building a random policy", func(t *testing.T) {
		config := metrics.AgentConfig{Kind: metrics.KindRandom, Seed: 1}

		require.IsType(t, &player.Random{}, newPlayer(config, 0))
	})

	t.Run("building a search policy", func(t *testing.T) {
		config := metrics.AgentConfig{Kind: metrics.KindMCTS, Iterations: 10, Seed: 1}

		require.IsType(t, &searcher.MCTS{}, newPlayer(config, 0))
	})

	t.Run("panics on an unknown kind", func(t *testing.T) {
		require.Panics(t, func() {
			newPlayer(metrics.AgentConfig{Kind: "psychic"}, 0)
		})
	})
}

func TestRunGame(t *testing.T) {
	config1 := metrics.AgentConfig{ID: 1, Kind: metrics.KindMCTS, Iterations: 20, Seed: 5}
	config2 := metrics.AgentConfig{ID: 2, Kind: metrics.KindRandom, Seed: 6}

	result := runGame(config1, config2, 3)

	require.Equal(t, 3, result.index)
	require.NotEmpty(t, result.game.ID, "Every game should get an id")
	require.Equal(t, 1, result.game.Agent1)
	require.Equal(t, 2, result.game.Agent2)
	require.Equal(t, 1, result.game.StartingPlayer, "Odd game indices should start with player 1")
	require.Equal(t, result.game.Moves, len(result.moves))
	require.Equal(t, 48, result.game.Score0+result.game.Score1,
		"Every stone should end up in a store")
	for _, move := range result.moves {
		require.Equal(t, result.game.ID, move.Game, "Every move should point at its game")
	}
}

func TestRunMatchup(t *testing.T) {
	t.Parallel()

	config1 := metrics.AgentConfig{ID: 1, Kind: metrics.KindMCTS, Iterations: 10, Seed: 5}
	config2 := metrics.AgentConfig{ID: 2, Kind: metrics.KindRandom, Seed: 6}

	games, moves := runMatchup(config1, config2)

	require.Len(t, games, NumGames)

	ids := map[string]bool{}
	totalMoves := 0
	for i, g := range games {
		require.Equal(t, i%2, g.StartingPlayer, "Game %d should alternate the starting side", i)
		require.NotEmpty(t, g.ID)
		ids[g.ID] = true
		totalMoves += g.Moves
	}
	require.Len(t, ids, NumGames, "Every game should get its own id")
	require.Equal(t, totalMoves, len(moves), "The move records should cover every game")
}
