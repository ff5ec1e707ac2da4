package experiments

import (
	"encoding/csv"
	"os"
	"othello/experiments/metrics"
	"othello/game"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, dir, file string) [][]string {
	matches, err := filepath.Glob(filepath.Join(dir, "*", file))
	require.NoError(t, err)
	require.Len(t, matches, 1, "expected one %s", file)

	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunExperiment(t *testing.T) {
	output := t.TempDir()
	s := Settings{Games: 2, Seed: 3, Output: output, Weights: game.DefaultWeights}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: SearchAgent, Depth: 1, Evaluation: "position"},
		{ID: 2, Kind: RandomAgent, Seed: s.Seed},
	}

	err := runExperiment("smoke", s, configs, [][]metrics.AgentConfig{{configs[0], configs[1]}})
	require.NoError(t, err)

	dir := filepath.Join(output, "smoke")
	require.Len(t, readRecords(t, dir, "agent_configs.csv"), 3)

	games := readRecords(t, dir, "game_records.csv")
	require.Len(t, games, 3, "header and one row per game")
	require.Equal(t, []string{"1", "2"}, games[1][1:3], "agent1 plays Black in the first game")
	require.Equal(t, []string{"2", "1"}, games[2][1:3], "colours alternate")

	moves := readRecords(t, dir, "move_records.csv")
	require.Greater(t, len(moves), 2*4, "every game should record its moves")
}

func TestCreateProvider(t *testing.T) {
	s := Settings{Weights: game.DefaultWeights}

	_, err := createProvider(s, metrics.AgentConfig{Kind: SearchAgent, Depth: 2, Evaluation: "mobility"}, 0)
	require.NoError(t, err)

	_, err = createProvider(s, metrics.AgentConfig{Kind: SearchAgent, Evaluation: "greedy"}, 0)
	require.Error(t, err, "unknown evaluation should be rejected")

	_, err = createProvider(s, metrics.AgentConfig{Kind: "oracle"}, 0)
	require.Error(t, err)
}

func TestSearchBeatsRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("plays full games")
	}

	s := Settings{Weights: game.DefaultWeights}
	search := metrics.AgentConfig{ID: 1, Kind: SearchAgent, Depth: 3, Evaluation: "position"}
	random := metrics.AgentConfig{ID: 2, Kind: RandomAgent}

	const games = 20
	wins := map[int]int{}
	for i := 0; i < games; i++ {
		black, white := search, random
		if i%2 == 1 {
			black, white = random, search
		}
		gameMetric, _, err := runGame(s, black, white, uint64(i+1))
		require.NoError(t, err)

		switch gameMetric.Winner {
		case game.Black.String():
			wins[black.ID]++
		case game.White.String():
			wins[white.ID]++
		}
	}

	require.GreaterOrEqual(t, wins[search.ID], 15, "search should win most games with either colour, got %v", wins)
}
