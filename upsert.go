package mchash

// Upsert installs or overwrites the value for k, returning
// the prior value if k already had one. Only the single writer goroutine may
// call Upsert.
//
// Upsert scans hashes 1..H_max. If it finds k already present, it overwrites
// the value in place and returns immediately. Otherwise it remembers the
// first vacant slot it sees and, once the map's current maximum probe depth
// has been passed with a vacant slot in hand, stops scanning early: no
// occupied slot beyond that depth could possibly hold k.
func (m *Map[K, V]) Upsert(k K, v V) (prior V, hadPrior bool, err error) {
	firstVacantIdx := -1
	firstVacantDepth := 0

	for n := 1; n <= m.hMax; n++ {
		idx := m.sizing.Index(m.family.Hash(k, n))
		s := m.slots[idx].Load()

		var key *K
		if s != nil {
			key = s.loadKey()
			if key != nil && *key == k {
				prior = *s.loadValue()
				s.overwriteValue(v)
				m.metrics.recordUpsert(false)
				return prior, true, nil
			}
		}

		if firstVacantIdx < 0 && key == nil {
			firstVacantIdx = idx
			firstVacantDepth = n
		}

		if firstVacantIdx >= 0 && n > int(m.hist.max.Load()) {
			break
		}
	}

	if firstVacantIdx < 0 {
		m.logCapacityExhausted(k)
		var zero V
		return zero, false, ErrInsertionCapacityExhausted
	}

	if m.Size() >= m.maxCapacity {
		m.logCapacityReached()
		var zero V
		return zero, false, ErrCapacityReached
	}

	m.install(firstVacantIdx, firstVacantDepth, k, v)
	m.metrics.recordUpsert(true)
	var zero V
	return zero, false, nil
}

// install places a new entry at idx/depth, creating the slot record on first
// use of that index or recycling it if one already exists there.
func (m *Map[K, V]) install(idx, depth int, k K, v V) {
	s := m.slots[idx].Load()
	if s == nil {
		m.slots[idx].Store(newSlot[K, V](idx, depth, k, v))
	} else {
		s.recycle(depth, k, v)
	}
	m.size.Add(1)
	m.hist.incr(depth)
}
