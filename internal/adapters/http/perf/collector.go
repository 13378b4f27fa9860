// Package perf collects request and query timings in a fixed-size ring
// buffer. Writes are cheap and lock-briefly; aggregation happens on read.
package perf

import (
	"sort"
	"sync"
	"time"
)

// DefaultRingSize is the default capacity of the ring buffer.
const DefaultRingSize = 4096

// EntryKind distinguishes request vs query entries.
type EntryKind uint8

const (
	KindRequest EntryKind = iota
	KindQuery
)

// Entry is a single timing record.
type Entry struct {
	Kind       EntryKind
	Path       string // HTTP path or SQL operation name
	StatusCode int    // HTTP status (0 for queries)
	DurationMs float64
	Timestamp  time.Time
}

// Collector is a fixed-size ring buffer for timing entries. When full, the
// oldest entries are overwritten.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
	pos     int
	filled  bool
	total   int64
}

// NewCollector creates a collector with the given ring capacity.
// PRE: size > 0 (non-positive falls back to DefaultRingSize)
// POST: Returns a ready-to-use collector with pre-allocated storage
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{entries: make([]Entry, size)}
}

// Record appends an entry, overwriting the oldest when full.
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.entries[c.pos] = e
	c.pos++
	if c.pos == len(c.entries) {
		c.pos = 0
		c.filled = true
	}
	c.total++
	c.mu.Unlock()
}

// TotalRecorded returns the total number of entries ever recorded.
func (c *Collector) TotalRecorded() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Snapshot holds aggregated timings computed on read.
type Snapshot struct {
	Requests     int
	Queries      int
	RequestP50Ms float64
	RequestP95Ms float64
	QueryP50Ms   float64
	QueryP95Ms   float64
}

// Snapshot aggregates the entries currently in the ring.
// PRE: none
// POST: Returns percentiles over buffered entries; zeros when empty
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	n := len(c.entries)
	if !c.filled {
		n = c.pos
	}
	buf := make([]Entry, n)
	copy(buf, c.entries[:n])
	c.mu.Unlock()

	var reqs, qrys []float64
	for _, e := range buf {
		if e.Kind == KindRequest {
			reqs = append(reqs, e.DurationMs)
		} else {
			qrys = append(qrys, e.DurationMs)
		}
	}
	return Snapshot{
		Requests:     len(reqs),
		Queries:      len(qrys),
		RequestP50Ms: percentile(reqs, 0.50),
		RequestP95Ms: percentile(reqs, 0.95),
		QueryP50Ms:   percentile(qrys, 0.50),
		QueryP95Ms:   percentile(qrys, 0.95),
	}
}

func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	idx := int(p * float64(len(sorted)-1))
	return sorted[idx]
}
