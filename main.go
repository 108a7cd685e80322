package main

import (
	"flag"
	"fmt"
	"multiagent/engine"
	"multiagent/experiments"
	"multiagent/game"
	"multiagent/meta"
	"multiagent/searcher"
	"multiagent/searcher/agent"
	"os"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	agent      string
	depth      int
	evaluation string
	layout     string
	ghost      string
	games      int
	seed       uint64
	render     bool
}

func main() {
	var c config
	flag.StringVar(&c.agent, "agent", searcher.AlphaBetaName, "Pacman search algorithm: minimax, alphabeta or expectimax")
	flag.IntVar(&c.depth, "depth", meta.DEPTH, "Search depth in full rounds")
	flag.StringVar(&c.evaluation, "eval", "score", "Evaluation function: score or composite")
	flag.StringVar(&c.layout, "layout", "minimaxClassic", "Built-in layout name or layout file path")
	flag.StringVar(&c.ghost, "ghost", agent.RandomGhostName, "Ghost agent: random or directional")
	flag.IntVar(&c.games, "games", 1, "Number of games to play")
	flag.Uint64Var(&c.seed, "seed", 1, "Seed for the ghosts")
	flag.BoolVar(&c.render, "render", false, "Draw the board after every move")
	debug := flag.Bool("debug", false, "Log every search")
	experiment := flag.String("experiment", "", "Run a stock experiment instead: algorithms or depth")
	out := flag.String("out", "results", "Output directory of experiments")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *experiment != "" {
		e, err := experiments.Stock(*experiment, *out)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to find experiment")
		}
		if err := e.Run(); err != nil {
			log.Fatal().Err(err).Msgf("failed to run %s experiment", e.Name)
		}
		return
	}

	if err := play(c); err != nil {
		log.Fatal().Err(err).Msg("failed to play")
	}
}

func play(c config) error {
	evaluate, err := game.Evaluation(c.evaluation)
	if err != nil {
		return err
	}
	profile := termenv.ColorProfile()

	wins, total := 0, 0.0
	for i := 0; i < c.games; i++ {
		state, err := game.Open(c.layout)
		if err != nil {
			return err
		}

		pacman, err := agent.New(c.agent, searcher.WithDepth(c.depth), searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())
		if err != nil {
			return err
		}
		agents := []agent.Agent{pacman}
		for index := 1; index < state.NumAgents(); index++ {
			ghost, err := agent.NewGhost(c.ghost, index, c.seed+uint64(i*state.NumAgents()+index))
			if err != nil {
				return err
			}
			agents = append(agents, ghost)
		}

		e := engine.LocalEngine(c.layout, agents, state)
		if c.render {
			fmt.Println(game.Render(state, profile))
			e.Observe = func(step int, s game.State) {
				if gs, ok := s.(*game.GameState); ok {
					fmt.Printf("\nMove %d\n%s\n", step, game.Render(gs, profile))
				}
			}
		}

		gameMetric, _, err := e.Run()
		if err != nil {
			return err
		}
		if gameMetric.Win {
			wins++
		}
		total += gameMetric.Score
		fmt.Printf("Game %d: win=%t score=%.0f moves=%d\n", i+1, gameMetric.Win, gameMetric.Score, gameMetric.TotalMoves)
	}

	if c.games > 0 {
		fmt.Printf("Win rate: %d/%d (%.2f)\n", wins, c.games, float64(wins)/float64(c.games))
		fmt.Printf("Average score: %.2f\n", total/float64(c.games))
	}
	return nil
}
