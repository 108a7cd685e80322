package agent

import (
	"fmt"
	"multiagent/experiments/metrics"
	"multiagent/game"

	"golang.org/x/exp/rand"
)

const (
	RandomGhostName      = "random"
	DirectionalGhostName = "directional"

	ProbAttack = 0.8 // Chance a brave directional ghost takes a move towards Pacman
	ProbFlee   = 0.8 // Chance a scared directional ghost takes a move away from Pacman
)

type randomGhost struct {
	index int
	rng   *rand.Rand
}

// NewRandomGhost returns a ghost that picks uniformly among its legal actions.
func NewRandomGhost(index int, seed uint64) Agent {
	return &randomGhost{index: index, rng: rand.New(rand.NewSource(seed))}
}

func (g *randomGhost) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("ghost %d: %w", g.index, ErrNoMoves)
	}
	return actions[g.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}

type directionalGhost struct {
	index  int
	attack float64
	flee   float64
	rng    *rand.Rand
}

// NewDirectionalGhost returns a ghost that prefers moves towards Pacman, or
// away from Pacman while scared.
func NewDirectionalGhost(index int, seed uint64) Agent {
	return &directionalGhost{
		index:  index,
		attack: ProbAttack,
		flee:   ProbFlee,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (g *directionalGhost) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("ghost %d: %w", g.index, ErrNoMoves)
	}
	return actions[g.sample(g.distribution(state, actions))], metrics.SearchMetric{}, nil
}

// distribution spreads the preferred probability over the best moves and the
// rest uniformly over all moves.
func (g *directionalGhost) distribution(state game.State, actions []game.Action) []float64 {
	probs := make([]float64, len(actions))
	board, ok := state.(game.Board)
	if !ok || g.index < 1 || g.index > len(board.Ghosts()) {
		for i := range probs {
			probs[i] = 1.0 / float64(len(actions))
		}
		return probs
	}

	ghost := board.Ghosts()[g.index-1]
	pacman := board.PacmanPosition()
	distances := make([]int, len(actions))
	for i, action := range actions {
		d, _ := action.(game.Direction)
		distances[i] = game.Manhattan(ghost.Position.Move(d), pacman)
	}

	bestProb := g.attack
	better := func(a, b int) bool { return a < b }
	if ghost.Scared() {
		bestProb = g.flee
		better = func(a, b int) bool { return a > b }
	}
	best := distances[0]
	for _, d := range distances[1:] {
		if better(d, best) {
			best = d
		}
	}
	numBest := 0
	for _, d := range distances {
		if d == best {
			numBest++
		}
	}

	for i, d := range distances {
		probs[i] = (1 - bestProb) / float64(len(actions))
		if d == best {
			probs[i] += bestProb / float64(numBest)
		}
	}
	return probs
}

func (g *directionalGhost) sample(probs []float64) int {
	sampled := g.rng.Float64()
	cumulative := 0.0
	for i, p := range probs {
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}

// NewGhost returns a ghost agent by name.
func NewGhost(name string, index int, seed uint64) (Agent, error) {
	switch name {
	case RandomGhostName, "RandomGhost":
		return NewRandomGhost(index, seed), nil
	case DirectionalGhostName, "DirectionalGhost":
		return NewDirectionalGhost(index, seed), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}
}
