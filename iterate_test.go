package mchash

import (
	"sort"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestKeysVisitsEveryLiveEntryOnce(t *testing.T) {
	m := newTestMap(t, 200)
	want := make([]string, 0, 50)
	for i := range 50 {
		k := strconv.Itoa(i)
		want = append(want, k)
		_, _, err := m.Upsert(k, i)
		require.NoError(t, err)
	}

	var got []string
	for k := range m.Keys() {
		got = append(got, k)
	}
	sort.Strings(want)
	sort.Strings(got)
	require.Empty(t, cmp.Diff(want, got))
}

func TestValuesAndEntriesAgreeWithKeys(t *testing.T) {
	m := newTestMap(t, 200)
	for i := range 20 {
		_, _, err := m.Upsert(strconv.Itoa(i), i*i)
		require.NoError(t, err)
	}

	entries := map[string]int{}
	for k, v := range m.Entries() {
		entries[k] = v
	}
	require.Len(t, entries, 20)
	for k, v := range entries {
		n, err := strconv.Atoi(k)
		require.NoError(t, err)
		require.Equal(t, n*n, v)
	}

	var values []int
	for v := range m.Values() {
		values = append(values, v)
	}
	require.Len(t, values, 20)
}

func TestKeysStopsOnFalseYield(t *testing.T) {
	m := newTestMap(t, 200)
	for i := range 20 {
		_, _, err := m.Upsert(strconv.Itoa(i), i)
		require.NoError(t, err)
	}

	seen := 0
	for range m.Keys() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

func TestIterationOverEmptyMapYieldsNothing(t *testing.T) {
	m := newTestMap(t, 10)
	for range m.Keys() {
		t.Fatal("empty map must not yield any key")
	}
	for range m.Values() {
		t.Fatal("empty map must not yield any value")
	}
}
