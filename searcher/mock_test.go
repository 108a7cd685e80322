package searcher

import (
	"errors"
	"fmt"
	"multiagent/game"

	"golang.org/x/exp/rand"
)

type mockAction string

func (a mockAction) String() string {
	return string(a)
}

type mockEdge struct {
	action mockAction
	child  *mockState
}

// mockState is an explicit game tree. The agent to move is implied by the
// tree's shape, so LegalActions ignores its argument.
type mockState struct {
	name     string
	agents   int
	score    float64
	win      bool
	lose     bool
	edges    []mockEdge
	expanded *int // Counts LegalActions calls across the tree, may be nil
	fail     error
}

func (m *mockState) LegalActions(agent int) []game.Action {
	if m.expanded != nil {
		*m.expanded++
	}
	actions := make([]game.Action, len(m.edges))
	for i, e := range m.edges {
		actions[i] = e.action
	}
	return actions
}

func (m *mockState) Successor(agent int, action game.Action) (game.State, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	for _, e := range m.edges {
		if e.action == action {
			return e.child, nil
		}
	}
	return nil, fmt.Errorf("no action %v at %s", action, m.name)
}

func (m *mockState) IsWin() bool    { return m.win }
func (m *mockState) IsLose() bool   { return m.lose }
func (m *mockState) NumAgents() int { return m.agents }
func (m *mockState) Score() float64 { return m.score }

func leaf(score float64) *mockState {
	return &mockState{score: score}
}

func node(edges ...mockEdge) *mockState {
	return &mockState{edges: edges}
}

func edge(action string, child *mockState) mockEdge {
	return mockEdge{action: mockAction(action), child: child}
}

// withAgents sets the agent count and expansion counter on every state of the tree.
func withAgents(root *mockState, agents int, expanded *int) *mockState {
	root.agents = agents
	root.expanded = expanded
	if root.name == "" {
		root.name = "root"
	}
	for _, e := range root.edges {
		e.child.name = root.name + "/" + string(e.action)
		withAgents(e.child, agents, expanded)
	}
	return root
}

// scenarioTree: maximizer [A, B], one adversary [X, Y],
// (A,X)=3 (A,Y)=5 (B,X)=2 (B,Y)=9.
func scenarioTree(expanded *int) *mockState {
	return withAgents(node(
		edge("A", node(edge("X", leaf(3)), edge("Y", leaf(5)))),
		edge("B", node(edge("X", leaf(2)), edge("Y", leaf(9)))),
	), 2, expanded)
}

// randomTree builds a tree of `levels` plies with 1..maxBranching actions per
// node and small integer leaf scores so that ties are common. Inner states
// are terminal with probability 1/10.
func randomTree(r *rand.Rand, agents, levels, maxBranching int) *mockState {
	var build func(level int) *mockState
	build = func(level int) *mockState {
		s := &mockState{score: float64(r.Intn(10))}
		if level == levels {
			return s
		}
		if level > 0 && r.Intn(10) == 0 {
			if r.Intn(2) == 0 {
				s.win = true
			} else {
				s.lose = true
			}
			return s
		}
		branching := 1 + r.Intn(maxBranching)
		for i := 0; i < branching; i++ {
			s.edges = append(s.edges, edge(fmt.Sprintf("a%d", i), build(level+1)))
		}
		return s
	}
	return withAgents(build(0), agents, nil)
}

var errBroken = errors.New("broken successor")
