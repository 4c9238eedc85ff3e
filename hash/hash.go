// Package hash provides keyed hash functions for comparable Go values, plus a
// Family helper that derives H_max independent hashes of the same key for
// multi-choice open addressing.
package hash

import (
	"hash/maphash"
	"math/bits"
	"math/rand/v2"
	"unsafe"

	dolt "github.com/dolthub/maphash"
)

var hashkey = [...]uint64{rand.Uint64(), rand.Uint64()}

// String returns a keyed hash function for strings, seeded once at call time.
func String() func(string) uint64 {
	seed := maphash.MakeSeed()
	return func(s string) uint64 {
		return maphash.String(seed, s)
	}
}

// Bytes returns a keyed hash function for byte slices, seeded once at call time.
func Bytes() func([]byte) uint64 {
	seed := maphash.MakeSeed()
	return func(b []byte) uint64 {
		return maphash.Bytes(seed, b)
	}
}

// Integer hashing algorithm inspired by https://github.com/Nicoshev/rapidhash

type IntType interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func Number[T IntType]() func(v T) uint64 {
	seed := rand.Uint64()
	var zero T
	seed ^= mix(seed^hashkey[0], hashkey[1]) ^ uint64(unsafe.Sizeof(zero))
	return func(v T) uint64 {
		var a, b uint64
		b = uint64(v)
		if unsafe.Sizeof(v) == 4 {
			b |= b << 32
			a = b
		} else {
			a = bits.RotateLeft64(b, 32)
		}
		b, a = bits.Mul64(a^hashkey[1], b^seed)
		return mix(a^hashkey[0]^uint64(unsafe.Sizeof(v)), b^hashkey[1])
	}
}

// Generic returns a keyed hash function for any comparable type, backed by
// dolthub/maphash's reflection-free generic hasher. This is the default
// hasher used when a map is constructed without an explicit WithHasher
// option: K is only known to be comparable, so String/Bytes/Number cannot be
// picked automatically.
func Generic[K comparable]() func(K) uint64 {
	h := dolt.NewHasher[K]()
	return h.Hash
}

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return hi ^ lo
}

// Family produces H_max independent hashes of a key. Hash(k, 1) is the
// natural hash of the key alone; Hash(k, n) for n >= 2 mixes the ordinal n
// into the base hash so the sequence is distinct across n with high
// probability for common keys. Salts are fixed at construction, so a
// Family is safe for concurrent read-only use once built.
type Family[K comparable] struct {
	base func(K) uint64
	salt []uint64
}

// NewFamily builds a Family able to produce hMax independent ordinals from
// fn, the base hash function (h_1). fn must be non-nil and hMax must be >= 1.
func NewFamily[K comparable](fn func(K) uint64, hMax int) Family[K] {
	salt := make([]uint64, hMax+1)
	for n := range salt {
		salt[n] = rand.Uint64()
	}
	return Family[K]{base: fn, salt: salt}
}

// Hash returns h_n(key) for n in [1, hMax]. The caller masks the result to
// the slot array's index space.
func (f Family[K]) Hash(key K, n int) uint64 {
	h := f.base(key)
	if n == 1 {
		return h
	}
	return mix(h^f.salt[n], uint64(n))
}
