package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpectimaxSearch(t *testing.T) {
	t.Run("choosing the action with the best expected value", func(t *testing.T) {
		got, metric, err := NewExpectimax(WithDepth(1), WithMetrics()).Search(scenarioTree(nil))

		require.NoError(t, err)
		require.Equal(t, Decision{Action: mockAction("B"), Value: 5.5}, got,
			"B averages (2+9)/2=5.5 and beats A's (3+5)/2=4")
		require.Equal(t, ExpectimaxName, metric.Algorithm)
		require.Equal(t, 7, metric.Nodes)
		require.Equal(t, 4, metric.Evaluations)
	})

	t.Run("averaging where minimax takes the minimum", func(t *testing.T) {
		state := withAgents(node(
			edge("A", node(edge("X", leaf(-100)), edge("Y", leaf(100)))),
		), 2, nil)

		expected, _, err := NewExpectimax(WithDepth(1)).Search(state)
		require.NoError(t, err)
		worst, _, err := NewMinimax(WithDepth(1)).Search(state)
		require.NoError(t, err)

		require.Equal(t, 0.0, expected.Value, "Expectimax should take the arithmetic mean")
		require.Equal(t, -100.0, worst.Value, "Minimax should take the minimum")
	})

	t.Run("using real division for the mean", func(t *testing.T) {
		state := withAgents(node(
			edge("A", node(edge("X", leaf(1)), edge("Y", leaf(2)), edge("Z", leaf(2)))),
		), 2, nil)

		got, _, err := NewExpectimax(WithDepth(1)).Search(state)

		require.NoError(t, err)
		require.InDelta(t, 5.0/3.0, got.Value, 1e-9)
	})

	t.Run("averaging each adversary of a round", func(t *testing.T) {
		state := withAgents(node(
			edge("A", node(
				edge("x", node(edge("p", leaf(0)), edge("q", leaf(4)))),
				edge("y", node(edge("p", leaf(8)))),
			)),
		), 3, nil)

		got, _, err := NewExpectimax(WithDepth(1)).Search(state)

		require.NoError(t, err)
		require.InDelta(t, 5.0, got.Value, 1e-9, "Mean of mean(0,4)=2 and 8")
	})
}
