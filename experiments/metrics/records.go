package metrics

import "time"

// Agent kinds playable in experiments.
const (
	KindMCTS   = "mcts"
	KindRandom = "random"
)

// AgentConfig describes one contestant.
type AgentConfig struct {
	ID          int
	Kind        string
	Iterations  int
	Duration    time.Duration
	Exploration float64
	Seed        uint64
}

// GameMetric describes one finished game.
type GameMetric struct {
	StartingPlayer int
	Winner         int // player id or game.Tie
	Moves          int
	Score0         int
	Score1         int
	StartTime      time.Time
	Duration       time.Duration
}

// MoveMetric describes one applied sow.
type MoveMetric struct {
	Step      int
	Player    int
	Pit       int
	ExtraTurn bool
	Duration  time.Duration
}

// GameRecord ties a game to the configs that played it. Agent1 always
// plays side 0 and Agent2 side 1; StartingPlayer says who sowed first.
type GameRecord struct {
	ID     string // uuid
	Agent1 int    // AgentConfig.ID
	Agent2 int    // AgentConfig.ID
	GameMetric
}

// MoveRecord ties a move to its game.
type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

// MatchupSummary aggregates all games between two configs.
type MatchupSummary struct {
	Matchup     string
	Agent1      int
	Agent2      int
	Games       int
	Wins1       int
	Wins2       int
	Ties        int
	WinRate1    float64
	WinRate1Low float64 // 95% confidence bounds
	WinRate1Hi  float64
	MeanMoves   float64
	StddevMoves float64
}
