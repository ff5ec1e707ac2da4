package main

import (
	"flag"
	"os"
	"othello/config"
	"othello/meta"
	"othello/ui"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func configFromArgs(t *testing.T, args ...string) (config.Config, error) {
	fs := flag.NewFlagSet("othello", flag.ContinueOnError)
	opts, err := parseFlags(fs, args)
	require.NoError(t, err)
	return loadConfig(opts, fs)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without flags", func(t *testing.T) {
		cfg, err := configFromArgs(t)
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg, "unset flags should not override the config")
	})

	t.Run("flags override defaults", func(t *testing.T) {
		cfg, err := configFromArgs(t, "-depth", "6", "-games", "3", "-seed", "9", "-log-level", "debug", "-log-file", "game.log")
		require.NoError(t, err)
		require.Equal(t, 6, cfg.Search.Depth)
		require.Equal(t, 3, cfg.Experiment.Games)
		require.Equal(t, uint64(9), cfg.Experiment.Seed)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "game.log", cfg.Log.File)
		require.Equal(t, meta.CornerWeight, cfg.Evaluation.Corner)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "othello.yaml")
		require.NoError(t, os.WriteFile(path, []byte("search:\n  depth: 5\nexperiment:\n  games: 4\n"), 0644))

		cfg, err := configFromArgs(t, "-config", path, "-depth", "2")
		require.NoError(t, err)
		require.Equal(t, 2, cfg.Search.Depth, "flag should win over the file")
		require.Equal(t, 4, cfg.Experiment.Games, "file should win over the defaults")
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := configFromArgs(t, "-depth", "0")
		require.Error(t, err, "an explicit zero depth should fail validation")
	})
}

func TestPlayGameQuit(t *testing.T) {
	// The headless renderer has no user and asks to quit at the first human turn
	err := playGame(config.Default(), ui.NewHeadless())
	require.NoError(t, err, "quitting should end the game cleanly")
}

func TestRunUnknownMode(t *testing.T) {
	fs := flag.NewFlagSet("othello", flag.ContinueOnError)
	opts, err := parseFlags(fs, []string{"-mode", "watch"})
	require.NoError(t, err)
	require.Error(t, run(opts, fs))
}
