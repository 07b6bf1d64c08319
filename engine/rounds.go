package engine

import (
	"spaces/game"
)

// SimulateRounds plays each player board against the opponent board at the
// same index, numbering rounds from 1. Rounds are independent; no state
// carries from one to the next. Cumulative match scoring is the caller's
// concern.
func SimulateRounds(playerBoards, opponentBoards []*game.Board, options ...Option) ([]RoundResult, error) {
	if len(playerBoards) != len(opponentBoards) {
		return nil, &ArityError{
			PlayerBoards:   len(playerBoards),
			OpponentBoards: len(opponentBoards),
		}
	}

	results := make([]RoundResult, 0, len(playerBoards))
	for i := range playerBoards {
		results = append(results, SimulateRound(i+1, playerBoards[i], opponentBoards[i], options...))
	}
	return results, nil
}
