package searcher

import (
	"fmt"
	"math"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"slices"

	"github.com/rs/zerolog/log"
)

// turn is the agent to move and the number of complete rounds played so far.
type turn struct {
	agent int
	depth int
}

// next passes the move to the following agent. A round completes when control
// returns to agent 0.
func (t turn) next(numAgents int) turn {
	agent := (t.agent + 1) % numAgents
	if agent == 0 {
		return turn{agent: 0, depth: t.depth + 1}
	}
	return turn{agent: agent, depth: t.depth}
}

// adversary reduces the values of an adversary's children to the node's value.
type adversary func(values []float64) float64

// minimum models an adversary that minimizes agent 0's value.
func minimum(values []float64) float64 {
	return slices.Min(values)
}

// mean models an adversary that picks each legal action uniformly at random.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// search holds the state of one decision.
type search struct {
	config
	algorithm string
	metrics   metrics.Collector
}

func (s *search) cutoff(state game.State, t turn) bool {
	return state.IsWin() || state.IsLose() || t.depth == s.depth
}

func (s *search) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state)
}

func (s *search) legalActions(state game.State, agent int) ([]game.Action, error) {
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: agent %d at a non-terminal state", ErrNoLegalActions, agent)
	}
	return actions, nil
}

// root folds over agent 0's actions in order and keeps the first action that
// reaches the running maximum. child receives the best value found so far and
// the fold stops once that value exceeds beta.
func (s *search) root(state game.State, beta float64, child func(game.State, turn, float64) (float64, error)) (Decision, error) {
	s.metrics.AddNode()
	actions, err := s.legalActions(state, 0)
	if err != nil {
		return Decision{}, err
	}

	next := turn{}.next(state.NumAgents())
	best := Decision{Value: math.Inf(-1)}
	for _, action := range actions {
		successor, err := state.Successor(0, action)
		if err != nil {
			return Decision{}, err
		}
		value, err := child(successor, next, best.Value)
		if err != nil {
			return Decision{}, err
		}
		if value > best.Value || best.Action == nil {
			best = Decision{Action: action, Value: value}
		}
		if best.Value > beta {
			s.metrics.AddPrune()
			break
		}
	}
	return best, nil
}

// value is the shared recursion of minimax and expectimax: agent 0 maximizes
// and adversaries reduce their children with the given policy.
func (s *search) value(state game.State, t turn, reduce adversary) (float64, error) {
	s.metrics.AddNode()
	if s.cutoff(state, t) {
		return s.leaf(state), nil
	}
	actions, err := s.legalActions(state, t.agent)
	if err != nil {
		return 0, err
	}

	next := t.next(state.NumAgents())
	values := make([]float64, len(actions))
	for i, action := range actions {
		successor, err := state.Successor(t.agent, action)
		if err != nil {
			return 0, err
		}
		values[i], err = s.value(successor, next, reduce)
		if err != nil {
			return 0, err
		}
	}

	if t.agent == 0 {
		return slices.Max(values), nil
	}
	return reduce(values), nil
}

func (s *search) finish(decision Decision, err error) (Decision, metrics.SearchMetric, error) {
	metric := s.metrics.Complete()
	if err != nil {
		return Decision{}, metric, err
	}

	log.Debug().
		Str("algorithm", s.algorithm).
		Int("depth", s.depth).
		Stringer("action", decision.Action).
		Float64("value", decision.Value).
		Int("nodes", metric.Nodes).
		Msg("search complete")
	return decision, metric, nil
}
