package experiments

import (
	"errors"
	"fmt"
	"multiagent/engine"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/meta"
	"multiagent/searcher"
	"multiagent/searcher/agent"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidExperiment = errors.New("invalid experiment")
	ErrUnknownExperiment = errors.New("unknown experiment")
)

// Experiment plays Games games per agent config on one layout. Game i of
// every config faces ghosts seeded the same way, so configs are compared on
// equal terms.
type Experiment struct {
	Name      string
	Layout    string // Built-in layout name or layout file path
	Games     int
	Seed      uint64
	Configs   []metrics.AgentConfig
	OutputDir string
}

// AlgorithmComparison pits the three searchers against random ghosts on a
// board where minimax-style pessimism loses every game.
func AlgorithmComparison(outputDir string) Experiment {
	return Experiment{
		Name:   "algorithm_comparison",
		Layout: "trappedClassic",
		Games:  meta.GAMES,
		Seed:   1,
		Configs: []metrics.AgentConfig{
			{ID: 1, Algorithm: searcher.MinimaxName, Depth: 3, Evaluation: "score", Ghost: agent.RandomGhostName},
			{ID: 2, Algorithm: searcher.AlphaBetaName, Depth: 3, Evaluation: "score", Ghost: agent.RandomGhostName},
			{ID: 3, Algorithm: searcher.ExpectimaxName, Depth: 3, Evaluation: "score", Ghost: agent.RandomGhostName},
		},
		OutputDir: outputDir,
	}
}

// DepthComparison measures how alpha-beta's strength and cost grow with depth.
func DepthComparison(outputDir string) Experiment {
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= 3; depth++ {
		configs = append(configs, metrics.AgentConfig{
			ID:         depth,
			Algorithm:  searcher.AlphaBetaName,
			Depth:      depth,
			Evaluation: "composite",
			Ghost:      agent.DirectionalGhostName,
		})
	}
	return Experiment{
		Name:      "depth_comparison",
		Layout:    "smallClassic",
		Games:     meta.GAMES,
		Seed:      1,
		Configs:   configs,
		OutputDir: outputDir,
	}
}

// Stock returns a stock experiment by name.
func Stock(name, outputDir string) (Experiment, error) {
	switch name {
	case "algorithms", "algorithm_comparison":
		return AlgorithmComparison(outputDir), nil
	case "depth", "depth_comparison":
		return DepthComparison(outputDir), nil
	default:
		return Experiment{}, fmt.Errorf("%w: %s", ErrUnknownExperiment, name)
	}
}

func (e Experiment) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidExperiment)
	}
	if e.Games < 1 {
		return fmt.Errorf("%w: %d games", ErrInvalidExperiment, e.Games)
	}
	if len(e.Configs) == 0 {
		return fmt.Errorf("%w: no agent configs", ErrInvalidExperiment)
	}
	return nil
}

// Run plays every game and writes the agent configs, game records and move
// records under OutputDir/Name/<timestamp>.
func (e Experiment) Run() error {
	if err := e.validate(); err != nil {
		return err
	}
	// Fail on a bad layout or config before any game is played
	if _, err := game.Open(e.Layout); err != nil {
		return err
	}
	for _, config := range e.Configs {
		if _, err := newAgents(config, 1, 0); err != nil {
			return fmt.Errorf("agent config %d: %w", config.ID, err)
		}
	}

	log.Info().Msgf("starting %s experiment on %s...", e.Name, e.Layout)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for ci, config := range e.Configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(e.Configs), config)

		wins, total := 0, 0.0
		for i := 0; i < e.Games; i++ {
			gameMetric, moveMetrics, err := e.runGame(config, i)
			if err != nil {
				return fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if gameMetric.Win {
				wins++
			}
			total += gameMetric.Score
			log.Info().Msgf("completed config %d game %d of %d: win=%t score=%.0f", config.ID, i+1, e.Games, gameMetric.Win, gameMetric.Score)
		}
		log.Info().Msgf("completed config %d: win rate %d/%d, average score %.2f", config.ID, wins, e.Games, total/float64(e.Games))
	}

	log.Info().Msgf("completed %s experiment", e.Name)

	return e.store(gameRecords, moveRecords)
}

func (e Experiment) runGame(config metrics.AgentConfig, i int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := game.Open(e.Layout)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	seed := e.Seed + uint64(i*state.NumAgents())
	agents, err := newAgents(config, state.NumAgents(), seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return engine.LocalEngine(e.Layout, agents, state).Run()
}

// newAgents builds Pacman from the config followed by numAgents-1 ghosts.
func newAgents(config metrics.AgentConfig, numAgents int, seed uint64) ([]agent.Agent, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Evaluation != "" {
		evaluate, err := game.Evaluation(config.Evaluation)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	pacman, err := agent.New(config.Algorithm, options...)
	if err != nil {
		return nil, err
	}
	agents := []agent.Agent{pacman}

	ghost := config.Ghost
	if ghost == "" {
		ghost = agent.RandomGhostName
	}
	for index := 1; index < numAgents; index++ {
		g, err := agent.NewGhost(ghost, index, seed+uint64(index))
		if err != nil {
			return nil, err
		}
		agents = append(agents, g)
	}
	if numAgents == 1 {
		// Validate the ghost name even when the board has no ghosts
		if _, err := agent.NewGhost(ghost, 1, seed); err != nil {
			return nil, err
		}
	}
	return agents, nil
}

func (e Experiment) store(gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(e.OutputDir, e.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
