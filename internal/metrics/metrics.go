package metrics

import (
	"sort"
	"sync"
	"time"
)

const maxSamples = 1000

type Metrics struct {
	mutex         sync.RWMutex
	queries       map[string]int64
	failures      map[string]int64
	lastErrors    map[string]string
	responseTimes map[string][]time.Duration
	statusCodes   map[string]map[int]int64
	healthy       bool
	startTime     time.Time
}

type Snapshot struct {
	Backend       string                      `json:"backend"`
	Healthy       bool                        `json:"healthy"`
	TotalQueries  int64                       `json:"total_queries"`
	TotalFailures int64                       `json:"total_failures"`
	Uptime        time.Duration               `json:"uptime"`
	Operations    map[string]OperationMetrics `json:"operations"`
}

type OperationMetrics struct {
	Queries     int64         `json:"queries"`
	Failures    int64         `json:"failures"`
	LastError   string        `json:"last_error,omitempty"`
	AvgResponse time.Duration `json:"avg_response"`
	P50Response time.Duration `json:"p50_response"`
	P95Response time.Duration `json:"p95_response"`
	P99Response time.Duration `json:"p99_response"`
	StatusCodes map[int]int64 `json:"status_codes"`
}

func (m *Metrics) IncrementQueries(operation string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.queries[operation]++
}

func (m *Metrics) RecordResponse(operation string, duration time.Duration, statusCode int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.recordDuration(operation, duration)

	if m.statusCodes[operation] == nil {
		m.statusCodes[operation] = make(map[int]int64)
	}
	m.statusCodes[operation][statusCode]++
}

func (m *Metrics) RecordFailure(operation string, duration time.Duration, errMsg string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.recordDuration(operation, duration)
	m.failures[operation]++
	m.lastErrors[operation] = errMsg
}

func (m *Metrics) recordDuration(operation string, duration time.Duration) {
	m.responseTimes[operation] = append(m.responseTimes[operation], duration)

	if len(m.responseTimes[operation]) > maxSamples {
		m.responseTimes[operation] = m.responseTimes[operation][1:]
	}
}

func (m *Metrics) UpdateHealthStatus(healthy bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.healthy = healthy
}

func (m *Metrics) Snapshot(backendURL string) Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	snap := Snapshot{
		Backend:    backendURL,
		Healthy:    m.healthy,
		Uptime:     time.Since(m.startTime),
		Operations: make(map[string]OperationMetrics),
	}

	allOperations := make(map[string]bool)
	for op := range m.queries {
		allOperations[op] = true
	}
	for op := range m.responseTimes {
		allOperations[op] = true
	}
	for op := range m.failures {
		allOperations[op] = true
	}

	for op := range allOperations {
		snap.TotalQueries += m.queries[op]
		snap.TotalFailures += m.failures[op]

		om := OperationMetrics{
			Queries:     m.queries[op],
			Failures:    m.failures[op],
			LastError:   m.lastErrors[op],
			StatusCodes: copyCodes(m.statusCodes[op]),
		}

		durations := m.responseTimes[op]
		if len(durations) > 0 {
			sorted := make([]time.Duration, len(durations))
			copy(sorted, durations)
			sort.Slice(sorted, func(i, j int) bool {
				return sorted[i] < sorted[j]
			})

			om.AvgResponse = average(sorted)
			om.P50Response = percentile(sorted, 0.50)
			om.P95Response = percentile(sorted, 0.95)
			om.P99Response = percentile(sorted, 0.99)
		}

		snap.Operations[op] = om
	}

	return snap
}

func NewMetrics() *Metrics {
	return &Metrics{
		queries:       make(map[string]int64),
		failures:      make(map[string]int64),
		lastErrors:    make(map[string]string),
		responseTimes: make(map[string][]time.Duration),
		statusCodes:   make(map[string]map[int]int64),
		startTime:     time.Now(),
	}
}

func copyCodes(codes map[int]int64) map[int]int64 {
	out := make(map[int]int64, len(codes))
	for k, v := range codes {
		out[k] = v
	}
	return out
}

func average(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range durations {
		sum += d
	}

	return sum / time.Duration(len(durations))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return sorted[index]
}
