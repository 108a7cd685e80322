package agent

import (
	"errors"
	"fmt"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
)

var (
	ErrUnknownAgent = errors.New("unknown agent")
	ErrNoMoves      = errors.New("agent has no legal moves")
)

type Agent interface {
	// FindMove returns the agent's next action and performance metrics (if
	// collected) from the search process
	FindMove(state game.State) (game.Action, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays agent 0 with the given searcher.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	decision, metric, err := a.searcher.Search(state)
	if err != nil {
		return nil, metric, err
	}
	return decision.Action, metric, nil
}

// New returns a search agent by algorithm name.
func New(name string, options ...searcher.Option) (Agent, error) {
	switch name {
	case searcher.MinimaxName, "MinimaxAgent":
		return NewSearchAgent(searcher.NewMinimax(options...)), nil
	case searcher.AlphaBetaName, "AlphaBetaAgent":
		return NewSearchAgent(searcher.NewAlphaBeta(options...)), nil
	case searcher.ExpectimaxName, "ExpectimaxAgent":
		return NewSearchAgent(searcher.NewExpectimax(options...)), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}
}
