package searcher

import "time"

// SearchMetric describes one Decide call.
type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Iterations int
	Expansions int
	MaxDepth   int
	RootVisits int
}

// MetricsCollector gathers per-decision search statistics.
type MetricsCollector interface {
	Start()
	AddIteration()
	AddExpansion()
	ObserveDepth(depth int)
	SetRootVisits(visits int)
	Complete() SearchMetric
}

type metricsCollector struct {
	startTime  time.Time
	iterations int
	expansions int
	maxDepth   int
	rootVisits int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddExpansion() {
	m.expansions++
}

func (m *metricsCollector) ObserveDepth(depth int) {
	if depth > m.maxDepth {
		m.maxDepth = depth
	}
}

func (m *metricsCollector) SetRootVisits(visits int) {
	m.rootVisits = visits
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Iterations: m.iterations,
		Expansions: m.expansions,
		MaxDepth:   m.maxDepth,
		RootVisits: m.rootVisits,
	}
}

type noMetricsCollector struct{}

// NewNoMetricsCollector returns a collector that records nothing, for
// callers that only want the move.
func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                 {}
func (noMetricsCollector) AddIteration()          {}
func (noMetricsCollector) AddExpansion()          {}
func (noMetricsCollector) ObserveDepth(int)       {}
func (noMetricsCollector) SetRootVisits(int)      {}
func (noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
