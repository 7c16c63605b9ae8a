package experiments

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kalaha/engine"
	"kalaha/experiments/metrics"
	"kalaha/game"
	"kalaha/player"
	"kalaha/searcher"
)

const (
	NumGames   = 30 // Per matchup
	NumWorkers = 4  // Concurrent games within a matchup
)

// The iteration ladder every strength experiment climbs.
var ladderConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.KindMCTS, Iterations: 100, Seed: 101},
	{ID: 2, Kind: metrics.KindMCTS, Iterations: 300, Seed: 102},
	{ID: 3, Kind: metrics.KindMCTS, Iterations: 1000, Seed: 103},
	{ID: 4, Kind: metrics.KindMCTS, Iterations: 3000, Seed: 104},
	{ID: 5, Kind: metrics.KindMCTS, Iterations: 10000, Seed: 105},
}

// RunStrengthExperiment plays every ladder rung against a low-budget
// baseline, alternating the starting side every game.
func RunStrengthExperiment(resultsDir string) {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMCTS, Iterations: 50, Seed: 100}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range ladderConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	runExperiment(resultsDir, "iterations_to_strength",
		append([]metrics.AgentConfig{baseline}, ladderConfigs...), matchUps)
}

// RunBaselineExperiment plays every ladder rung against the uniformly
// random policy.
func RunBaselineExperiment(resultsDir string) {
	random := metrics.AgentConfig{ID: 9, Kind: metrics.KindRandom, Seed: 900}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range ladderConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, random})
	}

	runExperiment(resultsDir, "strength_vs_random",
		append([]metrics.AgentConfig{random}, ladderConfigs...), matchUps)
}

func runExperiment(resultsDir, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) {
	log.Info().Msgf("starting %s experiment...", name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := []metrics.MatchupSummary{}

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		games, moves := runMatchup(config1, config2)
		gameRecords = append(gameRecords, games...)
		moveRecords = append(moveRecords, moves...)

		summary := summarize(fmt.Sprintf("%d_vs_%d", config1.ID, config2.ID), config1, config2, games)
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: wins1=%d wins2=%d ties=%d win_rate1=%.2f",
			mi+1, len(matchUps), summary.Wins1, summary.Wins2, summary.Ties, summary.WinRate1)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(resultsDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msg("stored move records")

	err = writer.WriteSummaries(summaries)
	if err != nil {
		panic(fmt.Sprintf("failed to write summaries: %v", err))
	}
	log.Info().Msgf("stored results under %s", writer.BaseDir())
}

type gameResult struct {
	index int
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// runMatchup plays NumGames independent games between two configs on a
// bounded worker pool, keeping the records in game order.
func runMatchup(config1, config2 metrics.AgentConfig) ([]metrics.GameRecord, []metrics.MoveRecord) {
	tasks := make(chan int, NumGames)
	results := make(chan gameResult, NumGames)

	var wg sync.WaitGroup
	for w := 0; w < NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				results <- runGame(config1, config2, i)
			}
		}()
	}

	for i := 0; i < NumGames; i++ {
		tasks <- i
	}
	close(tasks)
	wg.Wait()
	close(results)

	ordered := make([]metrics.GameRecord, NumGames)
	movesByGame := make([][]metrics.MoveRecord, NumGames)
	for result := range results {
		ordered[result.index] = result.game
		movesByGame[result.index] = result.moves
	}

	var moveRecords []metrics.MoveRecord
	for _, moves := range movesByGame {
		moveRecords = append(moveRecords, moves...)
	}
	return ordered, moveRecords
}

// runGame plays one game; the starting side alternates by game index.
func runGame(config1, config2 metrics.AgentConfig, index int) gameResult {
	players := [2]player.Player{
		newPlayer(config1, uint64(2*index)),
		newPlayer(config2, uint64(2*index+1)),
	}
	e := engine.NewLocalEngine(game.NewDefaultBoard(), players,
		engine.WithStartingPlayer(index%2))

	_, gameMetric, moveMetrics := e.Run()

	id := uuid.NewString()
	record := metrics.GameRecord{
		ID:         id,
		Agent1:     config1.ID,
		Agent2:     config2.ID,
		GameMetric: gameMetric,
	}
	moves := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moves[i] = metrics.MoveRecord{Game: id, MoveMetric: mm}
	}
	return gameResult{index: index, game: record, moves: moves}
}

// newPlayer builds a fresh policy for one game. The offset gives every
// game and side its own random stream.
func newPlayer(config metrics.AgentConfig, offset uint64) player.Player {
	seed := config.Seed*1000003 + offset

	switch config.Kind {
	case metrics.KindRandom:
		return player.NewRandom(seed)
	case metrics.KindMCTS:
		options := []searcher.Option{searcher.WithSeed(seed)}
		if config.Iterations > 0 {
			options = append(options, searcher.WithIterations(config.Iterations))
		}
		if config.Duration > 0 {
			options = append(options, searcher.WithDuration(config.Duration))
		}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExploration(config.Exploration))
		}
		return searcher.NewMCTS(options...)
	default:
		panic(fmt.Sprintf("unknown agent kind: %q", config.Kind))
	}
}
