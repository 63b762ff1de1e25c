// Package hash computes the short, stable fingerprints the derive engine
// uses to key its plan cache, adapted from the teacher's metric-ID hashing
// (internal/hash/id.go in mebo) to fingerprint Go types instead of metric
// names.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of data. internal/derive calls this with
// a type's package path and name so its executor cache can be keyed by a
// plain uint64 instead of a reflect.Type.
func Fingerprint(data string) uint64 {
	return xxhash.Sum64String(data)
}
