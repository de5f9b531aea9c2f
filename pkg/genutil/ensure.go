package genutil

import (
	"math"

	"github.com/finkit/finkit/pkg/finerrors"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// MustEnsureUInt32 is a helper function that calls EnsureUInt32 and panics on error.
func MustEnsureUInt32[T signed](value T) uint32 {
	ret, err := EnsureUInt32(value)
	if err != nil {
		panic(err)
	}
	return ret
}

// EnsureUInt32 ensures that the specified value can be represented as a uint32.
func EnsureUInt32[T signed](value T) (uint32, error) {
	if value < 0 {
		return 0, finerrors.MustBugf("specified value %d is negative and cannot be a uint32", value)
	}
	if uint64(value) > math.MaxUint32 {
		return 0, finerrors.MustBugf("specified value %d is too large to fit in a uint32", value)
	}
	return uint32(value), nil
}
