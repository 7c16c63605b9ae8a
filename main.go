package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kalaha/display"
	"kalaha/engine"
	"kalaha/experiments"
	"kalaha/game"
	"kalaha/player"
	"kalaha/searcher"
)

func main() {
	mode := flag.String("mode", "play", "play, watch, arena or baseline")
	pits := flag.Int("pits", game.DefaultPitsPerPlayer, "pits per player")
	stones := flag.Int("stones", game.DefaultStonesPerPit, "starting stones per pit")
	p0 := flag.String("p0", "", "player 0 policy: human, mcts or random")
	p1 := flag.String("p1", "", "player 1 policy: human, mcts or random")
	iterations := flag.Int("iterations", 1000, "search iterations per move")
	movetime := flag.Duration("movetime", 0, "search time per move, overrides iterations when set")
	exploration := flag.Float64("exploration", searcher.DefaultExploration, "exploration constant")
	seed := flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	results := flag.String("results", "results", "directory for experiment output")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch *mode {
	case "play":
		runGame(*pits, *stones, kindOrDefault(*p0, "human"), kindOrDefault(*p1, "mcts"),
			*iterations, *movetime, *exploration, *seed)
	case "watch":
		runGame(*pits, *stones, kindOrDefault(*p0, "mcts"), kindOrDefault(*p1, "mcts"),
			*iterations, *movetime, *exploration, *seed)
	case "arena":
		experiments.RunStrengthExperiment(*results)
	case "baseline":
		experiments.RunBaselineExperiment(*results)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

func kindOrDefault(kind, fallback string) string {
	if kind == "" {
		return fallback
	}
	return kind
}

// runGame plays a single game on stdout, rendering the board after every
// move. Logs go to stderr so they never interleave with the board.
func runGame(pits, stones int, kind0, kind1 string, iterations int, movetime time.Duration, exploration float64, seed uint64) {
	renderer := display.NewRenderer(termenv.NewOutput(os.Stdout))
	board := game.NewBoard(pits, stones)

	players := [2]player.Player{
		newPlayer(kind0, 0, iterations, movetime, exploration, seed),
		newPlayer(kind1, 1, iterations, movetime, exploration, seed),
	}

	fmt.Println(renderer.Welcome())
	fmt.Println(renderer.Board(board))

	e := engine.NewLocalEngine(board, players,
		engine.WithObserver(func(b *game.Board, event engine.MoveEvent) {
			fmt.Printf("Player %d sows pit %d.\n", event.Player, event.Pit)
			fmt.Println(renderer.Board(b))
			if event.ExtraTurn {
				fmt.Println(renderer.ExtraTurn(event.Player))
			}
		}))

	e.Run()

	fmt.Println(renderer.GameOver(e.Board()))
}

func newPlayer(kind string, side, iterations int, movetime time.Duration, exploration float64, seed uint64) player.Player {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	// Distinct streams per side even when both policies share one -seed.
	seed += uint64(side)

	switch kind {
	case "human":
		return player.NewHuman(os.Stdin, os.Stdout)
	case "random":
		return player.NewRandom(seed)
	case "mcts":
		options := []searcher.Option{
			searcher.WithExploration(exploration),
			searcher.WithSeed(seed),
		}
		if movetime > 0 {
			options = append(options, searcher.WithDuration(movetime))
		} else {
			options = append(options, searcher.WithIterations(iterations))
		}
		return searcher.NewMCTS(options...)
	default:
		fmt.Fprintf(os.Stderr, "unknown player kind %q\n", kind)
		os.Exit(2)
		return nil
	}
}
