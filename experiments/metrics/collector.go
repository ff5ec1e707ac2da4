package metrics

import "time"

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // States visited
	Leaves   int // States scored by the evaluation
	Cutoffs  int // Branches pruned by alpha-beta
	Passes   int // Forced passes expanded inside the tree
	Value    int // Minimax value of the chosen move
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string // "pass" when the player had no legal move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "None" on a tie
	BlackDisks     int
	WhiteDisks     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddPass()
	Complete(value int) SearchMetric
}

// collector counts the work of one search at a time. Searches run on a single goroutine.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	passes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes = 0
	m.leaves = 0
	m.cutoffs = 0
	m.passes = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddPass() {
	m.passes++
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		Passes:   m.passes,
		Value:    value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) AddPass()                        {}
func (m *dummyCollector) Complete(value int) SearchMetric { return SearchMetric{Value: value} }
