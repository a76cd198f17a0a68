package metrics

import (
	"sync/atomic"
	"time"

	"battleship/game"
)

// ShotMetric summarises the shots fired by one agent.
type ShotMetric struct {
	Duration time.Duration
	Shots    int
	Hits     int
	Sinks    int
	Retries  int // targets dropped because the cell was already closed
}

type MoveMetric struct {
	Step   int
	Side   string // "player" or "enemy"
	Target string // coordinate label
	Result string
}

type GameMetric struct {
	MatchID          string
	StartingSide     string
	Winner           string
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
	TotalTurns       int
	PlacementRetries int
	Player           ShotMetric
	Enemy            ShotMetric
}

type Collector interface {
	Start()
	AddShot(result game.ShotResult)
	AddRetry()
	Complete() ShotMetric
}

type collector struct {
	startTime time.Time
	shots     atomic.Int32
	hits      atomic.Int32
	sinks     atomic.Int32
	retries   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddShot(result game.ShotResult) {
	m.shots.Add(1)
	if result.IsHit() {
		m.hits.Add(1)
	}
	if result == game.ShotHitAndSunk {
		m.sinks.Add(1)
	}
}

func (m *collector) AddRetry() {
	m.retries.Add(1)
}

func (m *collector) Complete() ShotMetric {
	return ShotMetric{
		Duration: time.Since(m.startTime),
		Shots:    int(m.shots.Load()),
		Hits:     int(m.hits.Load()),
		Sinks:    int(m.sinks.Load()),
		Retries:  int(m.retries.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                         {}
func (m *dummyCollector) AddShot(result game.ShotResult) {}
func (m *dummyCollector) AddRetry()                      {}
func (m *dummyCollector) Complete() ShotMetric           { return ShotMetric{} }
