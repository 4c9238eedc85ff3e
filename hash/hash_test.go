package hash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenericDeterministic(t *testing.T) {
	h := Generic[string]()
	require.Equal(t, h("alpha"), h("alpha"))
}

func TestFamilyFirstMemberIsBaseHash(t *testing.T) {
	base := Generic[string]()
	f := NewFamily(base, 10)
	require.Equal(t, base("alpha"), f.Hash("alpha", 1))
}

func TestFamilyMembersDiffer(t *testing.T) {
	f := NewFamily(Generic[int](), 50)
	seen := map[uint64]bool{}
	for n := 1; n <= 50; n++ {
		h := f.Hash(42, n)
		require.False(t, seen[h], "h_%d collided with a prior member for the same key", n)
		seen[h] = true
	}
}

func TestFamilyStableAcrossCalls(t *testing.T) {
	f := NewFamily(Generic[int](), 50)
	k := rand.Int()
	for n := 1; n <= 50; n++ {
		require.Equal(t, f.Hash(k, n), f.Hash(k, n))
	}
}

func TestNumberDistinctForDistinctInputs(t *testing.T) {
	h := Number[int64]()
	seen := map[uint64]bool{}
	for i := int64(0); i < 1000; i++ {
		seen[h(i)] = true
	}
	require.Greater(t, len(seen), 990)
}
