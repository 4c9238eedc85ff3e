package mchash

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopRandomValueDrainsTheMap(t *testing.T) {
	m := newTestMap(t, 200)
	const n = 30
	for i := range n {
		_, _, err := m.Upsert(strconv.Itoa(i), i)
		require.NoError(t, err)
	}

	seen := map[int]bool{}
	for range n {
		require.False(t, m.IsEmpty())
		v := m.PopRandomValue()
		require.False(t, seen[v], "PopRandomValue returned %d twice", v)
		seen[v] = true
	}
	require.True(t, m.IsEmpty())
	require.Len(t, seen, n)
}

func TestPopRandomValueCanReachEveryIndex(t *testing.T) {
	// A regression guard: sampling must cover the full [0, N-1] slot range,
	// not [0, N-2]. Key "3" hashes to all ones, so it sits in the last slot
	// N-1; the other keys take slots 0, 1 and 2.
	m := newTestMap(t, 4, WithHasher[string, int](func(s string) uint64 {
		if s == "3" {
			return ^uint64(0)
		}
		n, _ := strconv.Atoi(s)
		return uint64(n)
	}))
	for i := range 4 {
		_, _, err := m.Upsert(strconv.Itoa(i), i)
		require.NoError(t, err)
	}
	got := map[int]bool{}
	for range 4 {
		got[m.PopRandomValue()] = true
	}
	require.Len(t, got, 4)
}
