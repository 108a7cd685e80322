package searcher

import (
	"errors"
	"multiagent/experiments/metrics"
	"multiagent/game"
)

const (
	MinimaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	ExpectimaxName = "expectimax"
)

var (
	ErrNoLegalActions = errors.New("no legal actions")
	ErrInvalidConfig  = errors.New("invalid search configuration")
)

// Decision is the action chosen for agent 0 and its backed-up value.
type Decision struct {
	Action game.Action
	Value  float64
}

type Searcher interface {
	// Search returns the decision for agent 0 and the metrics collected while
	// searching (zero unless WithMetrics is set)
	Search(state game.State) (Decision, metrics.SearchMetric, error)
	ChooseAction(state game.State) (game.Action, error)
}

func chooseAction(s Searcher, state game.State) (game.Action, error) {
	decision, _, err := s.Search(state)
	if err != nil {
		return nil, err
	}
	return decision.Action, nil
}
