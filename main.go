package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"othello/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	configPath string
	mode       string
	experiment string
	depth      int
	logLevel   string
	logFile    string
	seed       uint64
	games      int
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts, flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&opts.mode, "mode", "play", "play (human vs computer) or experiment")
	fs.StringVar(&opts.experiment, "experiment", "all", "depth, evaluation, baseline or all")
	fs.IntVar(&opts.depth, "depth", 0, "Search depth in plies")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level")
	fs.StringVar(&opts.logFile, "log-file", "", "Log file used in play mode")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed of the random baseline")
	fs.IntVar(&opts.games, "games", 0, "Games per experiment matchup")
	err := fs.Parse(args)
	return opts, err
}

func run(opts options, fs *flag.FlagSet) error {
	cfg, err := loadConfig(opts, fs)
	if err != nil {
		return err
	}

	switch opts.mode {
	case "play":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		setupLogging(cfg, zerolog.New(f).With().Timestamp().Logger())
		return play(cfg)
	case "experiment":
		setupLogging(cfg, log.Output(zerolog.ConsoleWriter{Out: os.Stderr}))
		return runExperiments(cfg, opts.experiment)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

// loadConfig reads the config file, applies the flags set on fs over it and validates
// the result.
func loadConfig(opts options, fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg, opts, fs)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides the config with the flags given on the command line.
func applyFlags(cfg *config.Config, opts options, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "depth":
			cfg.Search.Depth = opts.depth
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "log-file":
			cfg.Log.File = opts.logFile
		case "seed":
			cfg.Experiment.Seed = opts.seed
		case "games":
			cfg.Experiment.Games = opts.games
		}
	})
}

func setupLogging(cfg config.Config, logger zerolog.Logger) {
	level, _ := cfg.Level() // Validated
	zerolog.SetGlobalLevel(level)
	log.Logger = logger
}

func play(cfg config.Config) error {
	theme, err := cfg.UITheme()
	if err != nil {
		return err
	}

	term, err := ui.New(theme)
	if err != nil {
		return err
	}
	defer term.Close()

	return playGame(cfg, term)
}

// playGame runs a human game on the renderer, which also provides the human's input.
// Quitting ends the game without an error.
func playGame(cfg config.Config, renderer engine.Renderer) error {
	evaluate, err := cfg.EvaluationFn()
	if err != nil {
		return err
	}
	maximizer, err := cfg.Maximizer()
	if err != nil {
		return err
	}

	search := searcher.NewAlphaBeta(
		searcher.WithDepth(cfg.Search.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithMaximizer(maximizer),
		searcher.WithMetrics(),
	)
	e := engine.LocalEngine(renderer, player.NewHuman(renderer), player.NewComputer(search))

	gameMetric, _, err := e.Run(game.NewGameState())
	if errors.Is(err, game.ErrQuit) {
		log.Info().Msg("game abandoned")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("game finished in %s: %+v", gameMetric.Duration, gameMetric)
	return nil
}

func runExperiments(cfg config.Config, name string) error {
	s := experiments.Settings{
		Games:   cfg.Experiment.Games,
		Seed:    cfg.Experiment.Seed,
		Output:  cfg.Experiment.Output,
		Weights: cfg.Weights(),
	}

	runs := map[string]func(experiments.Settings) error{
		"depth":      experiments.RunDepthExperiment,
		"evaluation": experiments.RunEvaluationExperiment,
		"baseline":   experiments.RunBaselineExperiment,
	}
	if name != "all" {
		fn, ok := runs[name]
		if !ok {
			return fmt.Errorf("unknown experiment %q", name)
		}
		return fn(s)
	}
	for _, n := range []string{"baseline", "evaluation", "depth"} {
		if err := runs[n](s); err != nil {
			return fmt.Errorf("%s experiment: %w", n, err)
		}
	}
	return nil
}
