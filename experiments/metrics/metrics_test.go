package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 3)
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddEvaluation()
		c.AddEvaluation()
		c.AddPrune()

		got := c.Complete()

		want := SearchMetric{Algorithm: "alphabeta", Depth: 3, Nodes: 5, Evaluations: 2, Prunes: 1}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(SearchMetric{}, "Duration")); diff != "" {
			t.Errorf("metric mismatch (-want +got):\n%s", diff)
		}
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 1)
		c.AddNode()
		c.Start("minimax", 2)

		got := c.Complete()

		require.Zero(t, got.Nodes)
		require.Equal(t, 2, got.Depth)
	})

	t.Run("ignoring events when disabled", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 2)
		c.AddNode()
		c.AddEvaluation()
		c.AddPrune()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "comparison")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "comparison"), filepath.Dir(w.Dir()))

	read := func(name string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Algorithm: "expectimax", Depth: 2, Evaluation: "score", Ghost: "random"}})
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"id", "algorithm", "depth", "evaluation", "ghost"},
			{"1", "expectimax", "2", "score", "random"},
		}, read("agent_configs.csv"))
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    1,
			Agent: 1,
			GameMetric: GameMetric{
				Layout:     "trappedClassic",
				Win:        false,
				Score:      -502,
				StartTime:  start,
				EndTime:    start.Add(1500 * time.Millisecond),
				Duration:   1500 * time.Millisecond,
				TotalMoves: 6,
			},
		}})
		require.NoError(t, err)

		rows := read("game_records.csv")
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "trappedClassic", "false", "-502", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1.5s", "6"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Agent: 0, Action: "West", Score: -1, SearchMetric: SearchMetric{Algorithm: "alphabeta", Depth: 3, Duration: time.Millisecond, Nodes: 40, Evaluations: 20, Prunes: 4}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Agent: 1, Action: "East", Score: -1}},
		})
		require.NoError(t, err)

		rows := read("move_records.csv")
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "0", "West", "-1", "alphabeta", "3", "1ms", "40", "20", "4"}, rows[1])
		require.Equal(t, []string{"1", "2", "1", "East", "-1", "", "0", "0s", "0", "0", "0"}, rows[2])
	})
}
