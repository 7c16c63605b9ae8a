package experiments

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"kalaha/experiments/metrics"
)

// summarize aggregates one matchup into win counts, a normal-approximation
// 95% confidence interval on agent1's win rate, and the game length
// distribution.
func summarize(name string, config1, config2 metrics.AgentConfig, records []metrics.GameRecord) metrics.MatchupSummary {
	summary := metrics.MatchupSummary{
		Matchup: name,
		Agent1:  config1.ID,
		Agent2:  config2.ID,
		Games:   len(records),
	}

	moves := make([]float64, 0, len(records))
	for _, record := range records {
		switch record.Winner {
		case 0:
			summary.Wins1++
		case 1:
			summary.Wins2++
		default:
			summary.Ties++
		}
		moves = append(moves, float64(record.Moves))
	}

	if summary.Games > 0 {
		n := float64(summary.Games)
		p := float64(summary.Wins1) / n
		margin := 1.96 * math.Sqrt(p*(1-p)/n)

		summary.WinRate1 = p
		summary.WinRate1Low = math.Max(0, p-margin)
		summary.WinRate1Hi = math.Min(1, p+margin)
		summary.MeanMoves = stat.Mean(moves, nil)
		summary.StddevMoves = stat.StdDev(moves, nil)
	}

	return summary
}
