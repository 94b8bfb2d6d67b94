package omap

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes the hash a Map selects slots with. Implementations
// must be deterministic for the lifetime of the map. Key equality is
// Go's ==, so a custom Hasher has to agree with it: a == b implies
// h(a) == h(b).
type Hasher[K comparable] func(K) uint64

// DefaultHasher returns the hasher a Map uses when none is supplied.
//
// Strings are hashed with xxHash. Integer keys hash to their own
// value: table capacities are powers of two, so the low bits select
// the slot directly. Any other comparable kind is hashed through its
// fmt "%v" rendering, which is deterministic but slow; supply a
// custom Hasher on hot paths with struct keys.
func DefaultHasher[K comparable]() Hasher[K] {
	switch any(*new(K)).(type) {
	case string:
		return func(key K) uint64 {
			return xxhash.Sum64String(any(key).(string))
		}
	case int:
		return func(key K) uint64 { return uint64(any(key).(int)) }
	case int8:
		return func(key K) uint64 { return uint64(any(key).(int8)) }
	case int16:
		return func(key K) uint64 { return uint64(any(key).(int16)) }
	case int32:
		return func(key K) uint64 { return uint64(any(key).(int32)) }
	case int64:
		return func(key K) uint64 { return uint64(any(key).(int64)) }
	case uint:
		return func(key K) uint64 { return uint64(any(key).(uint)) }
	case uint8:
		return func(key K) uint64 { return uint64(any(key).(uint8)) }
	case uint16:
		return func(key K) uint64 { return uint64(any(key).(uint16)) }
	case uint32:
		return func(key K) uint64 { return uint64(any(key).(uint32)) }
	case uint64:
		return func(key K) uint64 { return any(key).(uint64) }
	case uintptr:
		return func(key K) uint64 { return uint64(any(key).(uintptr)) }
	default:
		return func(key K) uint64 {
			d := xxhash.New()
			fmt.Fprintf(d, "%v", key)
			return d.Sum64()
		}
	}
}
