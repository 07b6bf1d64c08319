package metrics

import (
	"sync/atomic"
	"time"
)

// MatchConfig describes one throughput matchup: how big the boards are,
// how many rounds to play, and the generator seed that makes the matchup
// reproducible.
type MatchConfig struct {
	ID        int
	BoardSize int
	Rounds    int
	Seed      uint64
}

type MatchMetric struct {
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
	Rounds          int
	PlayerWins      int
	OpponentWins    int
	Ties            int
	Collisions      int
	TrapHits        int
	RoundsPerSecond float64
}

type Collector interface {
	Start()
	AddRound(winner string, collision, playerHitTrap, opponentHitTrap bool)
	Complete() MatchMetric
}

type collector struct {
	startTime    time.Time
	rounds       atomic.Int64
	playerWins   atomic.Int64
	opponentWins atomic.Int64
	ties         atomic.Int64
	collisions   atomic.Int64
	trapHits     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
}

func (c *collector) AddRound(winner string, collision, playerHitTrap, opponentHitTrap bool) {
	c.rounds.Add(1)
	switch winner {
	case "player":
		c.playerWins.Add(1)
	case "opponent":
		c.opponentWins.Add(1)
	default:
		c.ties.Add(1)
	}
	if collision {
		c.collisions.Add(1)
	}
	if playerHitTrap {
		c.trapHits.Add(1)
	}
	if opponentHitTrap {
		c.trapHits.Add(1)
	}
}

func (c *collector) Complete() MatchMetric {
	end := time.Now()
	duration := end.Sub(c.startTime)
	rounds := int(c.rounds.Load())

	perSecond := 0.0
	if duration > 0 {
		perSecond = float64(rounds) / duration.Seconds()
	}

	return MatchMetric{
		StartTime:       c.startTime,
		EndTime:         end,
		Duration:        duration,
		Rounds:          rounds,
		PlayerWins:      int(c.playerWins.Load()),
		OpponentWins:    int(c.opponentWins.Load()),
		Ties:            int(c.ties.Load()),
		Collisions:      int(c.collisions.Load()),
		TrapHits:        int(c.trapHits.Load()),
		RoundsPerSecond: perSecond,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                            {}
func (c *dummyCollector) AddRound(string, bool, bool, bool) {}

func (c *dummyCollector) Complete() MatchMetric {
	return MatchMetric{}
}
