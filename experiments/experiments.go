package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/ui"

	"github.com/rs/zerolog/log"
)

const (
	SearchAgent = "search"
	RandomAgent = "random"
)

// Settings are shared by every matchup of an experiment.
type Settings struct {
	Games   int // Per matchup
	Seed    uint64
	Output  string
	Weights game.Weights
}

// RunDepthExperiment pairs agents of several depths against the default depth agent.
func RunDepthExperiment(s Settings) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: SearchAgent, Depth: meta.SearchDepth, Evaluation: "position"}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: SearchAgent, Depth: 1, Evaluation: "position"},
		{ID: 2, Kind: SearchAgent, Depth: 2, Evaluation: "position"},
		{ID: 3, Kind: SearchAgent, Depth: 3, Evaluation: "position"},
		{ID: 4, Kind: SearchAgent, Depth: 5, Evaluation: "position"},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", s, append(depthConfigs, baseline), matchUps)
}

// RunEvaluationExperiment pairs the positional evaluation against the mobility one at
// the same depth.
func RunEvaluationExperiment(s Settings) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: SearchAgent, Depth: meta.SearchDepth, Evaluation: "position"},
		{ID: 2, Kind: SearchAgent, Depth: meta.SearchDepth, Evaluation: "mobility"},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}

	return runExperiment("evaluation", s, configs, matchUps)
}

// RunBaselineExperiment pairs search agents against a random player.
func RunBaselineExperiment(s Settings) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: RandomAgent, Seed: s.Seed}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: SearchAgent, Depth: 1, Evaluation: "position"},
		{ID: 2, Kind: SearchAgent, Depth: 2, Evaluation: "position"},
		{ID: 3, Kind: SearchAgent, Depth: meta.SearchDepth, Evaluation: "position"},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("baseline", s, append(configs, baseline), matchUps)
}

// runExperiment plays s.Games games per matchup, alternating colours, and stores the
// records under <output>/<name>/<timestamp>.
func runExperiment(name string, s Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < s.Games; i++ {
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			count++
			gameMetric, moveMetrics, err := runGame(s, black, white, s.Seed+uint64(count))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s (%d-%d)",
				mi+1, len(matchUps), i+1, gameMetric.Winner, gameMetric.BlackDisks, gameMetric.WhiteDisks)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(s.Output, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored %d games and %d moves in %s", len(gameRecords), len(moveRecords), writer.Dir())
	return nil
}

func runGame(s Settings, black, white metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	blackProvider, err := createProvider(s, black, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	whiteProvider, err := createProvider(s, white, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(ui.NewHeadless(), blackProvider, whiteProvider)
	return e.Run(game.NewGameState())
}

func createProvider(s Settings, config metrics.AgentConfig, seed uint64) (engine.MoveProvider, error) {
	switch config.Kind {
	case RandomAgent:
		return player.NewRandom(seed), nil
	case SearchAgent:
		evaluate, err := game.EvaluationByName(config.Evaluation, s.Weights)
		if err != nil {
			return nil, err
		}
		// Evaluations favour White, so both sides of a computer game search with White
		// maximizing and each plays for its own colour.
		options := []searcher.Option{
			searcher.WithEvaluationFn(evaluate),
			searcher.WithMaximizer(game.White),
			searcher.WithMetrics(),
		}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		return player.NewComputer(searcher.NewAlphaBeta(options...)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}
