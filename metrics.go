package mchash

import "github.com/prometheus/client_golang/prometheus"

// metricsSink records counters for aggregate and rare/slow-path events. It
// is nil-safe: every method tolerates a nil receiver so the hot path pays
// nothing when WithMetrics was not supplied.
type metricsSink struct {
	lookupHits, lookupMisses prometheus.Counter
	inserts, overwrites      prometheus.Counter
	deletes, randomEvictions prometheus.Counter
	capacityExhausted        prometheus.Counter
	capacityReached          prometheus.Counter
}

func newMetricsSink(reg *prometheus.Registry) *metricsSink {
	if reg == nil {
		return nil
	}
	counter := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: help})
		reg.MustRegister(c)
		return c
	}
	return &metricsSink{
		lookupHits:        counter("mchash_lookup_hits_total", "Lookups that found a live, validated entry."),
		lookupMisses:      counter("mchash_lookup_misses_total", "Lookups that found no entry."),
		inserts:           counter("mchash_inserts_total", "Upserts that installed a new key."),
		overwrites:        counter("mchash_overwrites_total", "Upserts that overwrote an existing key's value."),
		deletes:           counter("mchash_deletes_total", "Successful deletes."),
		randomEvictions:   counter("mchash_random_evictions_total", "Entries removed by PopRandomValue."),
		capacityExhausted: counter("mchash_insertion_capacity_exhausted_total", "Upserts that exhausted the hash family without finding a slot."),
		capacityReached:   counter("mchash_capacity_reached_total", "Upserts rejected because max capacity was reached."),
	}
}

func (m *metricsSink) recordLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.lookupHits.Inc()
	} else {
		m.lookupMisses.Inc()
	}
}

func (m *metricsSink) recordUpsert(inserted bool) {
	if m == nil {
		return
	}
	if inserted {
		m.inserts.Inc()
	} else {
		m.overwrites.Inc()
	}
}

func (m *metricsSink) recordDelete() {
	if m == nil {
		return
	}
	m.deletes.Inc()
}

func (m *metricsSink) recordRandomEviction() {
	if m == nil {
		return
	}
	m.randomEvictions.Inc()
}

func (m *metricsSink) recordCapacityExhausted() {
	if m == nil {
		return
	}
	m.capacityExhausted.Inc()
}

func (m *metricsSink) recordCapacityReached() {
	if m == nil {
		return
	}
	m.capacityReached.Inc()
}
