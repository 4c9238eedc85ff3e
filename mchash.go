// Copyright (c) 2016 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package mchash implements a fixed-capacity, lock-free, single-writer/
// multi-reader associative container built on multi-choice open addressing.
//
// A Map never rehashes: its slot array is sized at construction from the
// requested max capacity and load factor, and an Upsert beyond that capacity
// fails rather than growing the table. Each key has at most H_max candidate
// slots, chosen by an independent family of hash functions; every operation
// inspects at most H_max slots.
//
// Exactly one goroutine may call Upsert, Delete, Clear, or PopRandomValue at
// a time (the "writer"). Any number of goroutines may concurrently call
// Lookup, ContainsKey, ContainsValue, Keys, Values, Entries, Size, and
// IsEmpty (the "readers"), including while the writer is active. There are
// no locks and no compare-and-swap retry loops: the single-writer discipline
// plus release/acquire ordering on each slot's fields is sufficient. Readers
// observe a newly inserted key as soon as the writer's publishing store
// completes, and never observe a value older than one they have already
// seen. Violating the single-writer rule voids every guarantee
// this package makes.
//
// If the caller can derive a key from a value (WithValueToKey), deleted
// slots are cleared in place and reused by later insertions, avoiding
// allocation churn for steady-state workloads. Otherwise slots are detached
// entirely on delete.
package mchash

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"sync/atomic"

	"github.com/db47h/mchash/hash"
	"github.com/db47h/mchash/internal/probe"
	"go.uber.org/zap"
)

// Map is a fixed-capacity, lock-free, single-writer/multi-reader map from K
// to V. The zero value is not usable; construct one with New.
type Map[K comparable, V any] struct {
	slots  []atomic.Pointer[slot[K, V]]
	sizing probe.Size
	family hash.Family[K]

	hMax        int
	maxCapacity int

	valueToKey func(V) K

	hist *histogram
	size atomic.Int64

	// rng is touched only by the single writer (PopRandomValue); unlike a
	// multi-writer lock-free cache there is no need for an atomic.Pointer
	// to a PRNG guarded by CAS, since no other goroutine ever calls it.
	rng *rand.Rand

	log     *zap.Logger
	metrics *metricsSink
}

// New constructs a Map that holds at most maxCapacity live entries.
//
// By default the slot array is sized for a load factor of 0.5 and the hash
// family has H_max = 50 independent members; both can be overridden with
// WithLoadFactor and WithHMax. Recycling and validated reads are disabled
// unless WithValueToKey is supplied.
func New[K comparable, V any](maxCapacity int, opts ...Option[K, V]) (*Map[K, V], error) {
	if maxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max capacity must be > 0, got %d", ErrInvalidConfig, maxCapacity)
	}

	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt.apply(cfg)
	}
	if cfg.loadFactor <= 0 || cfg.loadFactor > 1 {
		return nil, fmt.Errorf("%w: load factor must be in (0, 1], got %v", ErrInvalidConfig, cfg.loadFactor)
	}
	if cfg.hMax <= 0 {
		return nil, fmt.Errorf("%w: h_max must be > 0, got %d", ErrInvalidConfig, cfg.hMax)
	}

	sizing := probe.Sizing(maxCapacity, cfg.loadFactor)

	m := &Map[K, V]{
		slots:       make([]atomic.Pointer[slot[K, V]], sizing.N),
		sizing:      sizing,
		family:      hash.NewFamily(cfg.hasher, cfg.hMax),
		hMax:        cfg.hMax,
		maxCapacity: maxCapacity,
		valueToKey:  cfg.valueToKey,
		hist:        newHistogram(cfg.hMax),
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:         cfg.logger,
		metrics:     newMetricsSink(cfg.registry),
	}
	return m, nil
}

// Size returns the current number of live entries.
func (m *Map[K, V]) Size() int { return int(m.size.Load()) }

// IsEmpty reports whether the map currently holds no live entries.
func (m *Map[K, V]) IsEmpty() bool { return m.Size() == 0 }

// Capacity returns the max capacity the map was constructed with.
func (m *Map[K, V]) Capacity() int { return m.maxCapacity }

// Load returns Size()/Capacity(), a diagnostic ratio in [0, 1].
func (m *Map[K, V]) Load() float64 {
	return float64(m.Size()) / float64(m.maxCapacity)
}

// MaxProbeDepthInUse returns the largest probe depth currently occupied by a
// live entry, or 0 if the map is empty. It is purely diagnostic.
func (m *Map[K, V]) MaxProbeDepthInUse() int { return int(m.hist.max.Load()) }

// ContainsKey reports whether k has a live entry.
func (m *Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.Lookup(k)
	return ok
}

// ContainsValue performs a linear scan over all live slots comparing values
// by equality. Its timing is non-deterministic under concurrent mutation.
// Because V carries no comparable constraint, equality is decided with
// reflect.DeepEqual.
func (m *Map[K, V]) ContainsValue(v V) bool {
	for i := range m.slots {
		s := m.slots[i].Load()
		if s == nil {
			continue
		}
		kp := s.loadKey()
		if kp == nil {
			continue
		}
		val, ok := m.validatedValue(*kp, s)
		if ok && reflect.DeepEqual(val, v) {
			return true
		}
	}
	return false
}

// Clear detaches every slot, zeros the probe histogram, and resets size to
// zero. Concurrent readers may observe the transition partially: this is a
// writer-only operation and must not overlap with any other writer call.
func (m *Map[K, V]) Clear() {
	for i := range m.slots {
		m.slots[i].Store(nil)
	}
	m.hist.reset()
	m.size.Store(0)
	m.logCleared()
}

// PutAll always fails: bulk insertion from an external mapping is out of
// scope for this map. The method exists so ErrUnsupported has a concrete,
// testable call site.
func (m *Map[K, V]) PutAll(map[K]V) error {
	return ErrUnsupported
}

// validatedValue returns the value stored at slot s if it is still
// legitimately associated with key k. Without a value-to-key derivation
// configured, any non-vacant value is accepted.
func (m *Map[K, V]) validatedValue(k K, s *slot[K, V]) (V, bool) {
	vp := s.loadValue()
	if vp == nil {
		var zero V
		return zero, false
	}
	if m.valueToKey != nil && m.valueToKey(*vp) != k {
		var zero V
		return zero, false
	}
	return *vp, true
}
