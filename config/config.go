package config

import (
	"errors"
	"fmt"
	"os"
	"othello/game"
	"othello/meta"
	"othello/ui"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Search     Search     `yaml:"search"`
	Evaluation Evaluation `yaml:"evaluation"`
	Log        Log        `yaml:"log"`
	Theme      Theme      `yaml:"theme"`
	Experiment Experiment `yaml:"experiment"`
}

type Search struct {
	Depth     int    `yaml:"depth"`
	Maximizer string `yaml:"maximizer"` // "black" or "white"
}

type Evaluation struct {
	Name      string `yaml:"name"` // "position" or "mobility"
	Corner    int    `yaml:"corner"`
	Closeness int    `yaml:"closeness"`
	Mobility  int    `yaml:"mobility"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Theme colours are W3C names or #rrggbb values.
type Theme struct {
	Board     string `yaml:"board"`
	Black     string `yaml:"black"`
	White     string `yaml:"white"`
	Highlight string `yaml:"highlight"`
	Cursor    string `yaml:"cursor"`
	Text      string `yaml:"text"`
}

type Experiment struct {
	Games  int    `yaml:"games"`
	Seed   uint64 `yaml:"seed"`
	Output string `yaml:"output"`
}

func Default() Config {
	return Config{
		Search: Search{
			Depth:     meta.SearchDepth,
			Maximizer: "black",
		},
		Evaluation: Evaluation{
			Name:      "position",
			Corner:    meta.CornerWeight,
			Closeness: meta.ClosenessWeight,
			Mobility:  meta.MobilityWeight,
		},
		Log: Log{
			Level: "info",
			File:  meta.LogFile,
		},
		Theme: Theme{
			Board:     "green",
			Black:     "black",
			White:     "white",
			Highlight: "yellow",
			Cursor:    "red",
			Text:      "silver",
		},
		Experiment: Experiment{
			Games:  meta.ExperimentGames,
			Seed:   1,
			Output: meta.ExperimentDir,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep their
// default value, unknown keys are an error. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Search.Depth < 1 {
		errs = append(errs, fmt.Errorf("search depth must be positive, got %d", c.Search.Depth))
	}
	if _, err := c.Maximizer(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.EvaluationFn(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.UITheme(); err != nil {
		errs = append(errs, fmt.Errorf("theme: %w", err))
	}
	if c.Experiment.Games < 1 {
		errs = append(errs, fmt.Errorf("experiment games must be positive, got %d", c.Experiment.Games))
	}
	return errors.Join(errs...)
}

func (c Config) Maximizer() (game.Player, error) {
	switch strings.ToLower(c.Search.Maximizer) {
	case "black":
		return game.Black, nil
	case "white":
		return game.White, nil
	default:
		return game.None, fmt.Errorf("maximizer must be black or white, got %q", c.Search.Maximizer)
	}
}

func (c Config) Weights() game.Weights {
	return game.Weights{
		Corner:    c.Evaluation.Corner,
		Closeness: c.Evaluation.Closeness,
		Mobility:  c.Evaluation.Mobility,
	}
}

func (c Config) EvaluationFn() (game.Evaluate, error) {
	return game.EvaluationByName(c.Evaluation.Name, c.Weights())
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}

func (c Config) UITheme() (ui.Theme, error) {
	t := c.Theme
	return ui.NewTheme(t.Board, t.Black, t.White, t.Highlight, t.Cursor, t.Text)
}
