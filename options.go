package mchash

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/db47h/mchash/hash"
)

// Option configures a Map at construction time. The functional-options
// pattern follows db47h/cache's lru.Option (an interface wrapping a private
// setter so external packages cannot implement their own options).
type Option[K comparable, V any] interface {
	apply(*config[K, V])
}

type optionFunc[K comparable, V any] func(*config[K, V])

func (f optionFunc[K, V]) apply(c *config[K, V]) { f(c) }

type config[K comparable, V any] struct {
	loadFactor float64
	hMax       int
	hasher     func(K) uint64
	valueToKey func(V) K
	logger     *zap.Logger
	registry   *prometheus.Registry
}

func defaultConfig[K comparable, V any]() *config[K, V] {
	return &config[K, V]{
		loadFactor: 0.5,
		hMax:       50,
		hasher:     hash.Generic[K](),
		logger:     zap.NewNop(),
	}
}

// WithLoadFactor overrides the default load factor of 0.5. Smaller values
// grow the slot array, lowering collision probability at the cost of memory.
func WithLoadFactor[K comparable, V any](loadFactor float64) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.loadFactor = loadFactor
	})
}

// WithHMax overrides the default probe-depth ceiling of 50.
func WithHMax[K comparable, V any](hMax int) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.hMax = hMax
	})
}

// WithHasher overrides the default generic hasher with a caller-supplied
// base hash function (h_1 in the hash family).
func WithHasher[K comparable, V any](fn func(K) uint64) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.hasher = fn
	})
}

// WithValueToKey enables slot recycling and validated reads by supplying a
// function that recovers a key from a value. Without it, deletes detach
// slots entirely and reads require no post-check.
func WithValueToKey[K comparable, V any](fn func(V) K) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.valueToKey = fn
	})
}

// WithLogger plugs an external zap.Logger. The map never logs on the hot
// path; only rare events (capacity exhaustion, capacity refusal, clear) are
// emitted.
func WithLogger[K comparable, V any](l *zap.Logger) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		if l != nil {
			c.logger = l
		}
	})
}

// WithMetrics registers a small set of Prometheus counters (lookup hits and
// misses, inserts, overwrites, deletes, random evictions, and both capacity
// error kinds) against reg. Passing nil (the default) disables metrics so
// the hot path pays nothing for them.
func WithMetrics[K comparable, V any](reg *prometheus.Registry) Option[K, V] {
	return optionFunc[K, V](func(c *config[K, V]) {
		c.registry = reg
	})
}
