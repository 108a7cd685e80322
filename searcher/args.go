package searcher

import (
	"fmt"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/meta"
)

type Option func(c *config)

type config struct {
	depth    int
	evaluate game.Evaluate
	metrics  bool
}

// WithDepth sets the lookahead in full rounds (one move per agent).
func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		c.evaluate = evaluate
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		depth:    meta.DEPTH,
		evaluate: game.EvaluateScore,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func (c config) validate(state game.State) error {
	if c.depth < 1 {
		return fmt.Errorf("%w: depth %d is less than 1", ErrInvalidConfig, c.depth)
	}
	if c.evaluate == nil {
		return fmt.Errorf("%w: no evaluation function", ErrInvalidConfig)
	}
	if state == nil {
		return fmt.Errorf("%w: no state", ErrInvalidConfig)
	}
	if n := state.NumAgents(); n < 1 {
		return fmt.Errorf("%w: %d agents", ErrInvalidConfig, n)
	}
	return nil
}

// begin starts one decision with its own metrics collector, so a searcher can
// serve independent decisions concurrently.
func (c config) begin(algorithm string) *search {
	collector := metrics.NewDummyCollector()
	if c.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(algorithm, c.depth)
	return &search{
		config:    c,
		algorithm: algorithm,
		metrics:   collector,
	}
}
