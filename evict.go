package mchash

// PopRandomValue removes an arbitrary live entry and returns its value. Only
// the single writer goroutine may call PopRandomValue.
//
// It draws a random index in [0, N-1] — the full slot array, including the
// last slot — and resamples until it lands on a live, validated entry.
// Behavior is undefined (the loop never returns) if the map is empty;
// callers must check IsEmpty first.
func (m *Map[K, V]) PopRandomValue() V {
	n := uint64(len(m.slots))
	for {
		idx := int(m.rng.Uint64() % n)
		s := m.slots[idx].Load()
		if s == nil {
			continue
		}
		kp := s.loadKey()
		if kp == nil {
			continue
		}
		v, ok := m.validatedValue(*kp, s)
		if !ok {
			continue
		}

		m.hist.decr(s.probeDepth)
		if m.valueToKey != nil {
			s.clearInPlace()
		} else {
			m.slots[idx].Store(nil)
		}
		m.size.Add(-1)
		m.metrics.recordRandomEviction()
		return v
	}
}
