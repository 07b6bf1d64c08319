package main

import (
	"flag"
	"fmt"

	"spaces/engine"
	"spaces/experiments"
	"spaces/generator"
)

func main() {
	throughput := flag.Bool("throughput", false, "run the throughput experiment instead of a demo match")
	rounds := flag.Int("rounds", 5, "number of demo rounds to simulate")
	size := flag.Int("size", 5, "board size for the demo match")
	seed := flag.Uint64("seed", 42, "board generator seed")
	flag.Parse()

	if *throughput {
		experiments.RunThroughputExperiment()
		return
	}

	runDemoMatch(*rounds, *size, *seed)
}

// runDemoMatch plays a handful of generated boards against each other and
// prints the aggregate outcome.
func runDemoMatch(rounds, size int, seed uint64) {
	gen := generator.New(seed)
	playerBoards := gen.Boards(size, rounds)
	opponentBoards := gen.Boards(size, rounds)

	for _, board := range playerBoards {
		if err := board.Validate(); err != nil {
			panic(err)
		}
	}
	for _, board := range opponentBoards {
		if err := board.Validate(); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Simulating %d rounds on %dx%d boards...\n", rounds, size, size)
	results, err := engine.SimulateRounds(playerBoards, opponentBoards)
	if err != nil {
		panic(err)
	}

	playerWins, opponentWins, ties := 0, 0, 0
	for _, result := range results {
		switch result.Winner {
		case engine.PlayerWins:
			playerWins++
		case engine.OpponentWins:
			opponentWins++
		default:
			ties++
		}
	}
	fmt.Printf("Match over! player %d, opponent %d, ties %d\n", playerWins, opponentWins, ties)
}
