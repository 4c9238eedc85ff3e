package mchash

// Delete removes k's entry if present and returns its value.
// Only the single writer goroutine may call Delete.
func (m *Map[K, V]) Delete(k K) (V, bool) {
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

		v, ok := m.validatedValue(k, s)
		if !ok {
			var zero V
			return zero, false
		}

		m.hist.decr(s.probeDepth)
		if m.valueToKey != nil {
			s.clearInPlace()
		} else {
			m.slots[idx].Store(nil)
		}
		m.size.Add(-1)
		m.metrics.recordDelete()
		return v, true
	}
	var zero V
	return zero, false
}
