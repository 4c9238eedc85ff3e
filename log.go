package mchash

import "go.uber.org/zap"

// logCapacityExhausted reports a rare InsertionCapacityExhausted failure.
// keyDesc is logged via zap.Any since K carries no string/Stringer
// constraint.
func (m *Map[K, V]) logCapacityExhausted(keyDesc any) {
	m.log.Warn("mchash: insertion capacity exhausted",
		zap.Int("h_max", m.hMax),
		zap.Any("key", keyDesc),
	)
	m.metrics.recordCapacityExhausted()
}

// logCapacityReached reports a rare CapacityReached failure.
func (m *Map[K, V]) logCapacityReached() {
	m.log.Warn("mchash: capacity reached", zap.Int("max_capacity", m.maxCapacity))
	m.metrics.recordCapacityReached()
}

// logCleared reports a Clear call at debug level: not an error, but a
// discontinuity worth having in a trace when diagnosing unexpected misses.
func (m *Map[K, V]) logCleared() {
	m.log.Debug("mchash: map cleared", zap.Int("max_capacity", m.maxCapacity))
}
