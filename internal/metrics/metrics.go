package metrics

import (
	"sync"
	"time"
)

type tableStats struct {
	loads        int
	errors       int
	rows         int
	lastDuration time.Duration
}

type operationStats struct {
	calls        int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset loads and
// aggregations, and forwards them to OpenTelemetry when configured.
type Recorder struct {
	mu         sync.Mutex
	tables     map[string]*tableStats
	operations map[string]*operationStats
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		tables:     make(map[string]*tableStats),
		operations: make(map[string]*operationStats),
		otel:       otel,
	}
}

// RecordDatasetLoad tracks one attempt to read a source table.
func (r *Recorder) RecordDatasetLoad(table string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.tables[table]
	if !ok {
		stats = &tableStats{}
		r.tables[table] = stats
	}
	stats.loads++
	stats.lastDuration = duration
	if err != nil {
		stats.errors++
	} else {
		stats.rows = rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDatasetLoad(table, rows, duration, err)
	}
}

// RecordAggregation tracks the duration of one aggregation, labelled by operation.
func (r *Recorder) RecordAggregation(operation string, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.operations[operation]
	if !ok {
		stats = &operationStats{}
		r.operations[operation] = stats
	}
	stats.calls++
	stats.lastDuration = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAggregation(operation, duration)
	}
}

// TableSnapshot is a copy of the load stats for one table.
type TableSnapshot struct {
	Loads        int
	Errors       int
	Rows         int
	LastDuration time.Duration
}

// Table returns the current load stats for the table.
func (r *Recorder) Table(table string) TableSnapshot {
	if r == nil {
		return TableSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tables[table]
	if !ok {
		return TableSnapshot{}
	}
	return TableSnapshot{
		Loads:        stats.loads,
		Errors:       stats.errors,
		Rows:         stats.rows,
		LastDuration: stats.lastDuration,
	}
}

// Aggregations returns how many times the operation ran.
func (r *Recorder) Aggregations(operation string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.operations[operation]; ok {
		return stats.calls
	}
	return 0
}

// LastAggregation returns the most recent duration recorded for the operation.
func (r *Recorder) LastAggregation(operation string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.operations[operation]; ok {
		return stats.lastDuration
	}
	return 0
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
