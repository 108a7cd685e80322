package searcher

import (
	"math"
	"multiagent/experiments/metrics"
	"multiagent/game"
)

// Minimax searches the full game tree to the configured depth, assuming every
// adversary minimizes agent 0's value.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (m *Minimax) Search(state game.State) (Decision, metrics.SearchMetric, error) {
	if err := m.validate(state); err != nil {
		return Decision{}, metrics.SearchMetric{}, err
	}

	s := m.begin(MinimaxName)
	decision, err := s.root(state, math.Inf(1), func(child game.State, t turn, _ float64) (float64, error) {
		return s.value(child, t, minimum)
	})
	return s.finish(decision, err)
}

func (m *Minimax) ChooseAction(state game.State) (game.Action, error) {
	return chooseAction(m, state)
}
