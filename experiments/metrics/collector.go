package metrics

import (
	"sync/atomic"
	"time"

	"github.com/coder/quartz"
)

type SearchMetric struct {
	Mode       string
	Depth      int
	Duration   time.Duration
	Candidates int // Legal moves at the root
	Nodes      int // Positions expanded (legal moves generated)
	Leaves     int // Depth-exhausted or stuck positions
	Value      int // Backed-up value of the chosen move
}

type MoveMetric struct {
	Step    int
	Player  string
	Move    string
	Elapsed time.Duration // Wall clock spent by the agent, as seen by the engine
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	BlackStones    int
	WhiteStones    int
}

type Collector interface {
	Start(mode string, depth int)
	SetCandidates(n int)
	AddNode()
	AddLeaf()
	Complete(value int) SearchMetric
}

type collector struct {
	clock      quartz.Clock
	mode       string
	depth      int
	startTime  time.Time
	candidates atomic.Int32
	nodes      atomic.Int64
	leaves     atomic.Int64
}

// NewCollector returns a collector timing searches with clock.
func NewCollector(clock quartz.Clock) Collector {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &collector{clock: clock}
}

func (m *collector) Start(mode string, depth int) {
	m.startTime = m.clock.Now()
	m.mode = mode
	m.depth = depth
	m.candidates.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Mode:       m.mode,
		Depth:      m.depth,
		Duration:   m.clock.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Value:      value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mode string, depth int)    {}
func (m *dummyCollector) SetCandidates(n int)             {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{} }
