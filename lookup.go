package mchash

// Lookup returns the value associated with k, if any. It visits at most
// MaxProbeDepthInUse() slots, never allocates, and never mutates the map,
// so it is safe to call concurrently with the writer and with any number of
// other readers.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	d := int(m.hist.max.Load())
	for n := 1; n <= d; n++ {
		idx := m.sizing.Index(m.family.Hash(k, n))
		s := m.slots[idx].Load()
		if s == nil {
			continue
		}
		kp := s.loadKey()
		if kp == nil || *kp != k {
			continue
		}
		// The key can only ever occupy one slot; once found, the outcome
		// (validated or not) is final.
		v, ok := m.validatedValue(k, s)
		m.metrics.recordLookup(ok)
		return v, ok
	}
	m.metrics.recordLookup(false)
	var zero V
	return zero, false
}
