package mchash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogramIncrRaisesMax(t *testing.T) {
	h := newHistogram(50)
	require.EqualValues(t, 0, h.max.Load())
	h.incr(3)
	require.EqualValues(t, 3, h.max.Load())
	h.incr(1)
	require.EqualValues(t, 3, h.max.Load(), "a lower depth must not lower max")
	h.incr(7)
	require.EqualValues(t, 7, h.max.Load())
}

func TestHistogramDecrRecomputesMax(t *testing.T) {
	h := newHistogram(50)
	h.incr(2)
	h.incr(5)
	h.incr(5)
	require.EqualValues(t, 5, h.max.Load())

	h.decr(5) // one entry remains at depth 5
	require.EqualValues(t, 5, h.max.Load())

	h.decr(5) // bucket now empty, max must fall back to 2
	require.EqualValues(t, 2, h.max.Load())

	h.decr(2)
	require.EqualValues(t, 0, h.max.Load())
}

func TestHistogramReset(t *testing.T) {
	h := newHistogram(50)
	h.incr(10)
	h.incr(20)
	h.reset()
	require.EqualValues(t, 0, h.max.Load())
	for _, c := range h.count {
		require.Zero(t, c)
	}
}
