package config

import (
	"os"
	"othello/game"
	"othello/meta"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "othello.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate(), "defaults should be valid")
	require.Equal(t, meta.SearchDepth, cfg.Search.Depth)

	maximizer, err := cfg.Maximizer()
	require.NoError(t, err)
	require.Equal(t, game.Black, maximizer, "Black maximizes by default")
	require.Equal(t, game.DefaultWeights, cfg.Weights())

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("overrides keep other defaults", func(t *testing.T) {
		path := writeConfig(t, `
search:
  depth: 6
evaluation:
  name: mobility
  mobility: 8
log:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		require.Equal(t, 6, cfg.Search.Depth)
		require.Equal(t, "black", cfg.Search.Maximizer, "unset keys should keep their default")
		require.Equal(t, "mobility", cfg.Evaluation.Name)
		require.Equal(t, game.Weights{Corner: meta.CornerWeight, Closeness: meta.ClosenessWeight, Mobility: 8}, cfg.Weights())
		require.Equal(t, meta.LogFile, cfg.Log.File)

		level, err := cfg.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "search:\n  width: 3\n")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero depth", func(c *Config) { c.Search.Depth = 0 }},
		{"bad maximizer", func(c *Config) { c.Search.Maximizer = "red" }},
		{"unknown evaluation", func(c *Config) { c.Evaluation.Name = "greedy" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad colour", func(c *Config) { c.Theme.Board = "not-a-colour" }},
		{"no games", func(c *Config) { c.Experiment.Games = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	t.Run("white maximizer", func(t *testing.T) {
		cfg := Default()
		cfg.Search.Maximizer = "White"
		require.NoError(t, cfg.Validate())
		maximizer, err := cfg.Maximizer()
		require.NoError(t, err)
		require.Equal(t, game.White, maximizer)
	})
}
