package search

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// QueryCounter records which query terms users search for. It is injected
// into the engine rather than living in package-level state so its lifecycle
// belongs to the caller.
type QueryCounter interface {
	Record(term string)
	TopQueries(n int) []string
}

// MemoryQueryCounter keeps counts in process memory, safe for concurrent use.
type MemoryQueryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryQueryCounter() *MemoryQueryCounter {
	return &MemoryQueryCounter{counts: make(map[string]int64)}
}

func (c *MemoryQueryCounter) Record(term string) {
	if term == "" {
		return
	}
	c.mu.Lock()
	c.counts[term]++
	c.mu.Unlock()
}

func (c *MemoryQueryCounter) TopQueries(n int) []string {
	type entry struct {
		term  string
		count int64
	}
	c.mu.Lock()
	entries := make([]entry, 0, len(c.counts))
	for term, count := range c.counts {
		entries = append(entries, entry{term, count})
	}
	c.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].term < entries[j].term
	})

	if n > len(entries) {
		n = len(entries)
	}
	top := make([]string, 0, n)
	for _, e := range entries[:n] {
		top = append(top, e.term)
	}
	return top
}

// PromQueryCounter exports query counts as a prometheus counter vector. It
// does not track ranking itself; TopQueries is answered by the metrics
// backend, so it returns nil here.
type PromQueryCounter struct {
	counter *prometheus.CounterVec
}

func NewPromQueryCounter(reg prometheus.Registerer) *PromQueryCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "moai",
		Subsystem: "search",
		Name:      "query_terms_total",
		Help:      "Number of searches per query term.",
	}, []string{"term"})
	if reg != nil {
		reg.MustRegister(counter)
	}
	return &PromQueryCounter{counter: counter}
}

func (c *PromQueryCounter) Record(term string) {
	if term == "" {
		return
	}
	c.counter.WithLabelValues(term).Inc()
}

func (c *PromQueryCounter) TopQueries(n int) []string {
	return nil
}

// NopQueryCounter ignores everything; the engine's default.
type NopQueryCounter struct{}

func (NopQueryCounter) Record(string) {}

func (NopQueryCounter) TopQueries(int) []string { return nil }
