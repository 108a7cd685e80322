package searcher

import (
	"math"
	"multiagent/experiments/metrics"
	"multiagent/game"
)

// Expectimax models every adversary as choosing uniformly at random among its
// legal actions, and maximizes agent 0's expected value.
type Expectimax struct {
	config
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{config: newConfig(options)}
}

func (e *Expectimax) Search(state game.State) (Decision, metrics.SearchMetric, error) {
	if err := e.validate(state); err != nil {
		return Decision{}, metrics.SearchMetric{}, err
	}

	s := e.begin(ExpectimaxName)
	decision, err := s.root(state, math.Inf(1), func(child game.State, t turn, _ float64) (float64, error) {
		return s.value(child, t, mean)
	})
	return s.finish(decision, err)
}

func (e *Expectimax) ChooseAction(state game.State) (game.Action, error) {
	return chooseAction(e, state)
}
