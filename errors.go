package mchash

import "errors"

var (
	// ErrInsertionCapacityExhausted is returned by Upsert when all H_max
	// candidate slots for a key are occupied by other live keys, with no
	// vacant slot found among them. It is probabilistic and rare at the
	// default load factor and H_max.
	ErrInsertionCapacityExhausted = errors.New("mchash: insertion capacity exhausted")

	// ErrCapacityReached is returned by Upsert when installing a new key
	// would exceed the map's configured max capacity.
	ErrCapacityReached = errors.New("mchash: capacity reached")

	// ErrUnsupported is returned by PutAll: bulk insertion from an external
	// mapping is out of scope for this map.
	ErrUnsupported = errors.New("mchash: bulk put from an external mapping is not supported")

	// ErrInvalidConfig is wrapped by New when a construction argument
	// violates a precondition (max capacity, load factor, or H_max out of
	// range).
	ErrInvalidConfig = errors.New("mchash: invalid configuration")
)
