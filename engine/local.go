package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"kalaha/experiments/metrics"
	"kalaha/game"
	"kalaha/player"
)

type Option func(e *LocalEngine)

// MoveEvent describes one applied move for observers.
type MoveEvent struct {
	Player    int
	Pit       int
	ExtraTurn bool
}

// LocalEngine owns the authoritative board and alternates two players
// until the game ends, letting a mover go again on an extra turn and
// re-asking the same player after an illegal move, up to MaxRetries
// rejections in a row.
type LocalEngine struct {
	board    *game.Board
	players  [2]player.Player
	current  int
	observer func(b *game.Board, ev MoveEvent)
}

// WithStartingPlayer overrides which side sows first; player 0 starts by
// default.
func WithStartingPlayer(p int) Option {
	return func(e *LocalEngine) {
		if p == 0 || p == 1 {
			e.current = p
		}
	}
}

// WithObserver installs a hook called after every applied move.
func WithObserver(observer func(b *game.Board, ev MoveEvent)) Option {
	return func(e *LocalEngine) {
		e.observer = observer
	}
}

func NewLocalEngine(b *game.Board, players [2]player.Player, options ...Option) *LocalEngine {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}

	e := &LocalEngine{
		board:   b,
		players: players,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Board returns the authoritative board.
func (e *LocalEngine) Board() *game.Board {
	return e.board
}

// Run plays the game out and reports the winner, game.Tie included.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	starting := e.current
	log.Info().Int("player", starting).Msg("game starting")

	var moveMetrics []metrics.MoveMetric
	moves := 0
	rejections := 0
	for !game.IsTerminal(e.board) && moves < MaxMoves {
		current := e.current
		moveStart := time.Now()

		pit := e.players[current].ChooseMove(e.board, current)
		if pit == game.NoMove {
			log.Warn().Int("player", current).Msg("no move produced, abandoning game")
			break
		}

		extraTurn, err := game.ApplyMove(e.board, current, pit)
		if err != nil {
			rejections++
			log.Warn().Err(err).Int("player", current).Int("pit", pit).Msg("illegal move, asking again")
			if rejections >= MaxRetries {
				log.Warn().Int("player", current).Int("rejections", rejections).Msg("too many illegal moves, abandoning game")
				break
			}
			continue
		}

		rejections = 0
		moves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:      moves,
			Player:    current,
			Pit:       pit,
			ExtraTurn: extraTurn,
			Duration:  time.Since(moveStart),
		})
		log.Debug().
			Int("player", current).
			Int("pit", pit).
			Bool("extra_turn", extraTurn).
			Stringer("board", e.board).
			Msg("move applied")

		if e.observer != nil {
			e.observer(e.board, MoveEvent{Player: current, Pit: pit, ExtraTurn: extraTurn})
		}
		if !extraTurn {
			e.current = game.Opponent(current)
		}
	}

	if moves >= MaxMoves {
		log.Warn().Int("moves", moves).Msg("move limit reached, sweeping the board")
	}

	game.Finalize(e.board)
	winner := game.Winner(e.board)

	gameMetric := metrics.GameMetric{
		StartingPlayer: starting,
		Winner:         winner,
		Moves:          moves,
		Score0:         e.board.Stones(e.board.Store(0)),
		Score1:         e.board.Stones(e.board.Store(1)),
		StartTime:      start,
		Duration:       time.Since(start),
	}
	log.Info().
		Int("winner", winner).
		Int("moves", moves).
		Int("score0", gameMetric.Score0).
		Int("score1", gameMetric.Score1).
		Msg("game over")

	return winner, gameMetric, moveMetrics
}
