package propertyset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/jzelinskie/stringz"
)

// Equal returns true if both property sets hold the same keys and, for every
// key, the same values in the same order.
//
// The order of the keys themselves is not compared, so two sets built from
// the same pairs in a different key order are equal. A nil set is equal to
// Empty.
func (ps *PropertySet) Equal(other *PropertySet) bool {
	if ps == other {
		return true
	}

	mine, theirs := ps.kv(), other.kv()
	if mine.Len() != theirs.Len() {
		return false
	}

	for key, values := range mine.All() {
		otherValues, ok := theirs.Get(key)
		if !ok || !stringz.SliceEqual(values, otherValues) {
			return false
		}
	}
	return true
}

// Hash returns a hash of the content of the property set that agrees with
// Equal: equal sets always have the same hash.
//
// Each key is hashed together with its values and the per-key hashes are
// summed, which makes the result independent of key order.
func (ps *PropertySet) Hash() uint64 {
	var sum uint64
	for key, values := range ps.All() {
		sum += hashEntry(key, values)
	}
	return sum
}

func hashEntry(key string, values []string) uint64 {
	hasher := xxhash.New()
	writeLengthPrefixed(hasher, key)
	for _, value := range values {
		writeLengthPrefixed(hasher, value)
	}
	return hasher.Sum64()
}

// writeLengthPrefixed keeps ["ab"] and ["a", "b"] from hashing alike.
func writeLengthPrefixed(hasher *xxhash.Digest, s string) {
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(len(s)))
	_, _ = hasher.Write(prefix[:n])
	_, _ = hasher.WriteString(s)
}
