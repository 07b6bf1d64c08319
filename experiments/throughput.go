// Package experiments measures how many rounds per second the engine
// sustains across board sizes. The numbers feed training-budget decisions
// for agents that learn by self-play, so the harness leans on the same
// deterministic generator seeds to stay comparable between runs.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"spaces/engine"
	"spaces/experiments/metrics"
	"spaces/generator"
)

// RunThroughputExperiment simulates a batch of generated matchups per board
// size and stores per-match and per-round records as CSV.
func RunThroughputExperiment() {
	const RoundsPerMatch = 1000
	configs := []metrics.MatchConfig{
		{ID: 1, BoardSize: 2, Rounds: RoundsPerMatch, Seed: 1},
		{ID: 2, BoardSize: 4, Rounds: RoundsPerMatch, Seed: 2},
		{ID: 3, BoardSize: 8, Rounds: RoundsPerMatch, Seed: 3},
		{ID: 4, BoardSize: 16, Rounds: RoundsPerMatch, Seed: 4},
		{ID: 5, BoardSize: 32, Rounds: RoundsPerMatch, Seed: 5},
		{ID: 6, BoardSize: 64, Rounds: RoundsPerMatch, Seed: 6},
		{ID: 7, BoardSize: 99, Rounds: RoundsPerMatch, Seed: 7},
	}

	writer, err := metrics.NewWriter()
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteMatchConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store match configs: %v", err))
	}

	log.Info().Msgf("starting throughput experiment %s...", writer.RunID)

	matchRecords := []metrics.MatchRecord{}
	roundRecords := []metrics.RoundRecord{}

	for i, config := range configs {
		log.Info().Msgf("starting match %d on %dx%d boards...", config.ID, config.BoardSize, config.BoardSize)

		metric, results := runMatch(config)
		matchID := i + 1
		matchRecords = append(matchRecords, metrics.MatchRecord{
			ID:          matchID,
			Config:      config.ID,
			MatchMetric: metric,
		})
		for _, result := range results {
			roundRecords = append(roundRecords, metrics.RoundRecord{
				Match:          matchID,
				Round:          result.Round,
				Winner:         string(result.Winner),
				PlayerPoints:   result.PlayerPoints,
				OpponentPoints: result.OpponentPoints,
				Collision:      result.Collision,
				PlayerHit:      result.PlayerHitTrap,
				OpponentHit:    result.OpponentHitTrap,
			})
		}

		log.Info().Msgf("completed match %d: %d rounds in %s (%.0f rounds/s)",
			config.ID, metric.Rounds, metric.Duration, metric.RoundsPerSecond)
	}

	log.Info().Msg("completed throughput experiment")

	err = writer.WriteMatchRecords(matchRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write match records: %v", err))
	}
	log.Info().Msg("stored match records")

	err = writer.WriteRoundRecords(roundRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write round records: %v", err))
	}
	log.Info().Msg("stored round records")
}

// runMatch generates both sides' boards, validates them once, and times the
// round simulations alone.
func runMatch(config metrics.MatchConfig) (metrics.MatchMetric, []engine.RoundResult) {
	gen := generator.New(config.Seed)
	playerBoards := gen.Boards(config.BoardSize, config.Rounds)
	opponentBoards := gen.Boards(config.BoardSize, config.Rounds)

	for _, board := range playerBoards {
		if err := board.Validate(); err != nil {
			panic(fmt.Sprintf("generator produced an invalid board: %v", err))
		}
	}
	for _, board := range opponentBoards {
		if err := board.Validate(); err != nil {
			panic(fmt.Sprintf("generator produced an invalid board: %v", err))
		}
	}

	collector := metrics.NewCollector()
	collector.Start()
	results, err := engine.SimulateRounds(playerBoards, opponentBoards, engine.WithSilent())
	if err != nil {
		panic(fmt.Sprintf("simulation failed: %v", err))
	}
	for _, result := range results {
		collector.AddRound(string(result.Winner), result.Collision,
			result.PlayerHitTrap, result.OpponentHitTrap)
	}
	return collector.Complete(), results
}
