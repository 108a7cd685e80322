package searcher

import (
	"math"
	"multiagent/experiments/metrics"
	"multiagent/game"
)

// AlphaBeta returns the same decision as Minimax while skipping branches that
// cannot change it.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (a *AlphaBeta) Search(state game.State) (Decision, metrics.SearchMetric, error) {
	if err := a.validate(state); err != nil {
		return Decision{}, metrics.SearchMetric{}, err
	}

	s := a.begin(AlphaBetaName)
	beta := math.Inf(1)
	// At the root alpha is the best value found among earlier siblings
	decision, err := s.root(state, beta, func(child game.State, t turn, alpha float64) (float64, error) {
		return s.alphaBeta(child, t, alpha, beta)
	})
	return s.finish(decision, err)
}

func (a *AlphaBeta) ChooseAction(state game.State) (game.Action, error) {
	return chooseAction(a, state)
}

// alphaBeta is fail-soft with strict cutoffs: a node stops only once its value
// is strictly outside (alpha, beta), so values on the bounds stay exact and
// ties resolve as in Minimax.
func (s *search) alphaBeta(state game.State, t turn, alpha, beta float64) (float64, error) {
	s.metrics.AddNode()
	if s.cutoff(state, t) {
		return s.leaf(state), nil
	}
	actions, err := s.legalActions(state, t.agent)
	if err != nil {
		return 0, err
	}

	next := t.next(state.NumAgents())
	if t.agent == 0 {
		best := math.Inf(-1)
		for _, action := range actions {
			successor, err := state.Successor(t.agent, action)
			if err != nil {
				return 0, err
			}
			value, err := s.alphaBeta(successor, next, alpha, beta)
			if err != nil {
				return 0, err
			}
			best = max(best, value)
			if best > beta { // Beta cutoff
				s.metrics.AddPrune()
				return best, nil
			}
			alpha = max(alpha, best)
		}
		return best, nil
	}

	best := math.Inf(1)
	for _, action := range actions {
		successor, err := state.Successor(t.agent, action)
		if err != nil {
			return 0, err
		}
		value, err := s.alphaBeta(successor, next, alpha, beta)
		if err != nil {
			return 0, err
		}
		best = min(best, value)
		if best < alpha { // Alpha cutoff
			s.metrics.AddPrune()
			return best, nil
		}
		beta = min(beta, best)
	}
	return best, nil
}
