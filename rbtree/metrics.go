package rbtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/atomic"
)

var (
	treeInsertions = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_insertions_total",
		Help: "The total number of successful insert calls, including key replacements",
	}, []string{"tree"})

	treeRemovals = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_removals_total",
		Help: "The total number of entries removed, by any means (remove, pop, drain filter)",
	}, []string{"tree"})

	treeRotations = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "rbtree_rotations_total",
		Help: "The total number of rotations performed by the rebalancer",
	}, []string{"tree"})

	treeNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "rbtree_nodes",
		Help: "The current number of nodes held by named trees instrumented via Stats",
	}, []string{"tree"})
)

// Stats is a named tree's lock-free operation counters. Each Stats value
// holds its own atomics, safe to read concurrently even though the Tree
// itself is not safe for concurrent mutation.
type Stats struct {
	name       string
	insertions atomic.Int64
	removals   atomic.Int64
	rotations  atomic.Int64
}

// NewStats returns a Stats block reporting its counters under the given
// name label. Call Instrument to attach it to a Tree.
func NewStats(name string) *Stats {
	return &Stats{name: name}
}

func (s *Stats) recordInsertion() {
	s.insertions.Inc()
	treeInsertions.WithLabelValues(s.name).Inc()
}

func (s *Stats) recordRemoval() {
	s.removals.Inc()
	treeRemovals.WithLabelValues(s.name).Inc()
}

func (s *Stats) recordRotation() {
	s.rotations.Inc()
	treeRotations.WithLabelValues(s.name).Inc()
}

// Insertions returns the number of successful inserts recorded so far.
func (s *Stats) Insertions() int64 {
	return s.insertions.Load()
}

// Removals returns the number of removals recorded so far.
func (s *Stats) Removals() int64 {
	return s.removals.Load()
}

// Rotations returns the number of rebalancer rotations recorded so far.
func (s *Stats) Rotations() int64 {
	return s.rotations.Load()
}

// Observe publishes n as the current live node count for this Stats' name.
func (s *Stats) Observe(n int) {
	treeNodes.WithLabelValues(s.name).Set(float64(n))
}

// Instrument attaches stats to t, so every subsequent insert, remove and
// rotation on t updates it. A Tree with no attached Stats pays no
// instrumentation cost.
func (t *Tree[K, V]) Instrument(stats *Stats) {
	t.stats = stats
}
