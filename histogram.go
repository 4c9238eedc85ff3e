package mchash

import "sync/atomic"

// histogram tracks, per probe depth d in [1, H_max], how many live entries
// currently sit at depth d, plus the running maximum depth in use. count is
// touched only by the single writer; max is atomic because Lookup (and
// MaxProbeDepthInUse) read it from reader goroutines to bound their probe
// sequence, tolerating whatever staleness that implies under concurrent
// mutation.
type histogram struct {
	count []int // count[d] for d in [0, hMax]; count[0] is unused
	max   atomic.Int32
}

func newHistogram(hMax int) *histogram {
	return &histogram{count: make([]int, hMax+1)}
}

// incr records a new live entry at depth d, raising max if needed.
func (h *histogram) incr(d int) {
	h.count[d]++
	if d > int(h.max.Load()) {
		h.max.Store(int32(d))
	}
}

// decr removes a live entry from depth d, recomputing max if its bucket just
// emptied and was the current maximum.
func (h *histogram) decr(d int) {
	h.count[d]--
	if d == int(h.max.Load()) && h.count[d] == 0 {
		h.recomputeMax()
	}
}

// recomputeMax scans downward from the previous maximum. This is O(H_max),
// acceptable since H_max is tiny.
func (h *histogram) recomputeMax() {
	for d := int(h.max.Load()); d > 0; d-- {
		if h.count[d] > 0 {
			h.max.Store(int32(d))
			return
		}
	}
	h.max.Store(0)
}

// reset zeros every bucket and the running maximum.
func (h *histogram) reset() {
	for i := range h.count {
		h.count[i] = 0
	}
	h.max.Store(0)
}
