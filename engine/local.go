package engine

import (
	"fmt"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Local)(nil)

type Local struct {
	Layout   string
	State    game.State
	Agents   []agent.Agent
	MaxMoves int
	// Observe, if set, is called with every state after the initial one
	Observe func(step int, state game.State)
}

// LocalEngine runs a game in-process. Agent i plays agent index i of the state.
func LocalEngine(layout string, agents []agent.Agent, state game.State) *Local {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("number of agents %d does not match the state's %d", len(agents), state.NumAgents()))
	}
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("agent %d is nil", i))
		}
	}

	return &Local{
		Layout:   layout,
		State:    state,
		Agents:   agents,
		MaxMoves: MaxMoves,
	}
}

// Run executes the game loop, agents moving in index order, until the game
// is over.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Layout:    e.Layout,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting game on %s with %d agents", e.Layout, len(e.Agents))

	step := 0
	for !e.State.IsWin() && !e.State.IsLose() && step < e.MaxMoves {
		index := step % len(e.Agents)

		move, searchMetric, err := e.Agents[index].FindMove(e.State)
		if err != nil {
			return e.complete(gameMetric, step), moveMetrics, fmt.Errorf("agent %d failed at step %d: %w", index, step+1, err)
		}

		next, err := e.State.Successor(index, move)
		if err != nil {
			return e.complete(gameMetric, step), moveMetrics, fmt.Errorf("agent %d played %v at step %d: %w", index, move, step+1, err)
		}
		e.State = next
		step++

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Agent:        index,
			Action:       move.String(),
			Score:        next.Score(),
			SearchMetric: searchMetric,
		})
		if e.Observe != nil {
			e.Observe(step, next)
		}
	}

	gameMetric = e.complete(gameMetric, step)
	if gameMetric.Win || e.State.IsLose() {
		log.Info().Msgf("game over after %d moves: win=%t score=%.0f", step, gameMetric.Win, gameMetric.Score)
	} else {
		log.Info().Msgf("stopped after %d moves (no result yet): score=%.0f", step, gameMetric.Score)
	}
	return gameMetric, moveMetrics, nil
}

func (e *Local) complete(m metrics.GameMetric, moves int) metrics.GameMetric {
	m.Win = e.State.IsWin()
	m.Score = e.State.Score()
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = moves
	return m
}
