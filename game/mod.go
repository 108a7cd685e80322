package game

import "fmt"

// Action is an opaque move token. Searchers only compare actions by their
// position in LegalActions.
type Action interface {
	fmt.Stringer
}

// State should be immutable - Successor always returns a new state and never
// modifies the receiver.
//
// Agent 0 is the maximizing agent, agents 1..NumAgents()-1 are adversaries that
// move in ascending order after it.
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) (State, error)
	IsWin() bool
	IsLose() bool
	NumAgents() int
	Score() float64
}

// Board exposes what a heuristic needs to look at in a Pacman position.
type Board interface {
	State
	PacmanPosition() Position
	Food() []Position
	Capsules() []Position
	Ghosts() []Ghost
}

// Evaluate maps a state to a desirability score for agent 0, higher is better.
// It must accept any reachable state, terminal ones included.
type Evaluate func(State) float64
