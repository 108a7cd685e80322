package experiments

import (
	"encoding/csv"
	"multiagent/experiments/metrics"
	"multiagent/game"
	"multiagent/searcher"
	"multiagent/searcher/agent"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// One food next to Pacman, so a searching Pacman wins on its first move.
const oneBite = "%%%%%%\n%P. G%\n%%%%%%\n"

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExperimentRun(t *testing.T) {
	layout := filepath.Join(t.TempDir(), "oneBite.lay")
	require.NoError(t, os.WriteFile(layout, []byte(oneBite), 0o644))

	t.Run("writing a record per game and move", func(t *testing.T) {
		out := t.TempDir()
		e := Experiment{
			Name:   "bite",
			Layout: layout,
			Games:  2,
			Seed:   7,
			Configs: []metrics.AgentConfig{
				{ID: 1, Algorithm: searcher.MinimaxName, Depth: 1, Evaluation: "score", Ghost: agent.RandomGhostName},
				{ID: 2, Algorithm: searcher.ExpectimaxName, Depth: 1, Evaluation: "composite", Ghost: agent.DirectionalGhostName},
			},
			OutputDir: out,
		}

		require.NoError(t, e.Run())

		runs, err := os.ReadDir(filepath.Join(out, "bite"))
		require.NoError(t, err)
		require.Len(t, runs, 1)
		dir := filepath.Join(out, "bite", runs[0].Name())

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Equal(t, []string{"id", "algorithm", "depth", "evaluation", "ghost"}, configs[0])
		require.Equal(t, []string{"2", "expectimax", "1", "composite", "directional"}, configs[2])

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+4)
		for i, row := range games[1:] {
			require.Equal(t, "true", row[3], "game %d should be won", i+1)
			require.Equal(t, "509", row[4])
			require.Equal(t, "1", row[8])
		}
		require.Equal(t, []string{"1", "1", "2", "2"}, []string{games[1][1], games[2][1], games[3][1], games[4][1]})

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		require.Len(t, moves, 1+4)
		for _, row := range moves[1:] {
			require.Equal(t, "East", row[3])
		}
		require.Equal(t, searcher.MinimaxName, moves[1][5])
		require.Equal(t, searcher.ExpectimaxName, moves[4][5])
	})

	t.Run("rejecting invalid experiments", func(t *testing.T) {
		valid := Experiment{
			Name:      "bite",
			Layout:    layout,
			Games:     1,
			Configs:   []metrics.AgentConfig{{ID: 1, Algorithm: searcher.AlphaBetaName}},
			OutputDir: t.TempDir(),
		}

		noGames := valid
		noGames.Games = 0
		require.ErrorIs(t, noGames.Run(), ErrInvalidExperiment)

		noConfigs := valid
		noConfigs.Configs = nil
		require.ErrorIs(t, noConfigs.Run(), ErrInvalidExperiment)

		badLayout := valid
		badLayout.Layout = "nowhereClassic"
		require.ErrorIs(t, badLayout.Run(), game.ErrUnknownLayout)

		badAgent := valid
		badAgent.Configs = []metrics.AgentConfig{{ID: 1, Algorithm: "reflex"}}
		require.ErrorIs(t, badAgent.Run(), agent.ErrUnknownAgent)

		badGhost := valid
		badGhost.Configs = []metrics.AgentConfig{{ID: 1, Algorithm: searcher.AlphaBetaName, Ghost: "pinky"}}
		require.ErrorIs(t, badGhost.Run(), agent.ErrUnknownAgent)

		badEval := valid
		badEval.Configs = []metrics.AgentConfig{{ID: 1, Algorithm: searcher.AlphaBetaName, Evaluation: "reflex"}}
		require.ErrorIs(t, badEval.Run(), game.ErrUnknownEvaluation)

		entries, err := os.ReadDir(valid.OutputDir)
		require.NoError(t, err)
		require.Empty(t, entries, "Nothing should be written for invalid experiments")
	})
}

func TestStock(t *testing.T) {
	t.Run("looking up stock experiments", func(t *testing.T) {
		for _, name := range []string{"algorithms", "depth"} {
			e, err := Stock(name, "out")

			require.NoError(t, err, name)
			require.NoError(t, e.validate(), name)
			require.Equal(t, "out", e.OutputDir)
			_, err = game.Open(e.Layout)
			require.NoError(t, err, name)
		}
	})

	t.Run("rejecting unknown names", func(t *testing.T) {
		_, err := Stock("throughput", "out")
		require.ErrorIs(t, err, ErrUnknownExperiment)
	})
}
