package engine

import (
	"spaces/game"
)

// sideState is the transient per-side accumulator for one round. Trap maps
// are keyed by packed position and hold the step at which the trap went
// live.
type sideState struct {
	score    int
	pos      *game.Position
	ended    bool
	goal     bool
	hitTrap  bool
	trapPos  game.Position
	moves    int
	lastStep int
	traps    map[int]int
}

func newSideState() sideState {
	return sideState{lastStep: -1, traps: map[int]int{}}
}

// losePoint applies a one-point penalty, floored at zero.
func (s *sideState) losePoint() {
	if s.score > 0 {
		s.score--
	}
}

// apply executes one sequence entry. Opponent moves arrive here already
// rotated into the player's frame, so forward scoring only needs to know
// which row direction counts as progress.
func (s *sideState) apply(size int, pos game.Position, kind game.MoveKind, step int, forwardUp bool) {
	switch kind {
	case game.PieceMove:
		if s.pos != nil {
			if forwardUp && pos.Row < s.pos.Row {
				s.score++
			} else if !forwardUp && pos.Row > s.pos.Row {
				s.score++
			}
		}
		p := pos
		s.pos = &p
		s.moves++
	case game.TrapMove:
		s.traps[pos.Key(size)] = step
	case game.FinalMove:
		s.goal = true
		p := pos
		s.pos = &p
		s.score++
		s.ended = true
	}
	s.lastStep = step
}

// roundContext threads all mutable round state through the step loop in one
// place instead of a dozen loose variables.
type roundContext struct {
	size     int
	player   sideState
	opponent sideState
}

// SimulateRound replays two boards against each other and returns the
// scored outcome. Both boards must already have passed (*Board).Validate;
// the simulator never re-validates and never fails. Feeding it an
// unvalidated, self-inconsistent board yields an undefined but non-crashing
// result. Re-validating here would repeat the validator's work on every one
// of potentially thousands of calls per second.
//
// The opponent's board is authored in its own local frame, so every
// opponent position is rotated 180° into the player's frame before use.
func SimulateRound(round int, player, opponent *game.Board, options ...Option) RoundResult {
	cfg := newConfig(options...)

	size := player.Size
	ctx := roundContext{
		size:     size,
		player:   newSideState(),
		opponent: newSideState(),
	}
	steps := len(player.Sequence)
	if len(opponent.Sequence) > steps {
		steps = len(opponent.Sequence)
	}

	for step := 0; step < steps; step++ {
		if !ctx.player.ended && step < len(player.Sequence) {
			mv := player.Sequence[step]
			ctx.player.apply(size, mv.Pos, mv.Kind, step, true)
		}
		if !ctx.opponent.ended && step < len(opponent.Sequence) {
			mv := opponent.Sequence[step]
			ctx.opponent.apply(size, mv.Pos.Rotate(size), mv.Kind, step, false)
		}

		// Head-on collision knocks a point off both sides and ends the
		// round on the spot.
		if !ctx.player.goal && !ctx.opponent.goal &&
			ctx.player.pos != nil && ctx.opponent.pos != nil &&
			*ctx.player.pos == *ctx.opponent.pos {
			ctx.player.losePoint()
			ctx.opponent.losePoint()
			break
		}

		if !ctx.player.ended && ctx.player.pos != nil {
			if placed, ok := ctx.opponent.traps[ctx.player.pos.Key(size)]; ok && placed <= step {
				ctx.player.losePoint()
				ctx.player.hitTrap = true
				ctx.player.trapPos = *ctx.player.pos
				ctx.player.ended = true
			}
		}
		if !ctx.opponent.ended && ctx.opponent.pos != nil {
			if placed, ok := ctx.player.traps[ctx.opponent.pos.Key(size)]; ok && placed <= step {
				ctx.opponent.losePoint()
				ctx.opponent.hitTrap = true
				ctx.opponent.trapPos = *ctx.opponent.pos
				ctx.opponent.ended = true
			}
		}

		if (ctx.player.ended && ctx.opponent.ended) || ctx.player.goal || ctx.opponent.goal {
			break
		}
	}

	result := ctx.result(round, player, opponent)
	if !cfg.silent {
		cfg.logger.Info().
			Int("round", result.Round).
			Str("winner", string(result.Winner)).
			Int("playerPoints", result.PlayerPoints).
			Int("opponentPoints", result.OpponentPoints).
			Bool("collision", result.Collision).
			Bool("playerGoal", ctx.player.goal).
			Bool("opponentGoal", ctx.opponent.goal).
			Bool("playerHitTrap", result.PlayerHitTrap).
			Bool("opponentHitTrap", result.OpponentHitTrap).
			Msg("round simulated")
	}
	return result
}

func (ctx *roundContext) result(round int, player, opponent *game.Board) RoundResult {
	playerFinal := game.PlayerStart(ctx.size)
	if ctx.player.pos != nil {
		playerFinal = *ctx.player.pos
	}
	opponentFinal := game.OpponentStart(ctx.size)
	if ctx.opponent.pos != nil {
		opponentFinal = *ctx.opponent.pos
	}

	winner := Tie
	if ctx.player.score > ctx.opponent.score {
		winner = PlayerWins
	} else if ctx.opponent.score > ctx.player.score {
		winner = OpponentWins
	}

	return RoundResult{
		Round:            round,
		Winner:           winner,
		PlayerBoard:      player,
		OpponentBoard:    opponent,
		PlayerFinal:      playerFinal,
		OpponentFinal:    opponentFinal,
		PlayerPoints:     ctx.player.score,
		OpponentPoints:   ctx.opponent.score,
		Collision:        playerFinal == opponentFinal,
		PlayerMoves:      ctx.player.moves,
		OpponentMoves:    ctx.opponent.moves,
		PlayerHitTrap:    ctx.player.hitTrap,
		OpponentHitTrap:  ctx.opponent.hitTrap,
		PlayerTrapPos:    ctx.player.trapPos,
		OpponentTrapPos:  ctx.opponent.trapPos,
		PlayerLastStep:   ctx.player.lastStep,
		OpponentLastStep: ctx.opponent.lastStep,
	}
}
