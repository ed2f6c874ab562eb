// Package safe converts between integer types with range checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer kind used for heights, counts and indexes.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func negative[T Integer](v T) bool {
	return v < 0
}

// Uint32 converts v to uint32, failing outside [0, MaxUint32].
func Uint32[T Integer](v T) (uint32, error) {
	if negative(v) || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, failing on negative values.
func Uint64[T Integer](v T) (uint64, error) {
	if negative(v) {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts v to int64, failing above MaxInt64.
func Int64[T Integer](v T) (int64, error) {
	if !negative(v) && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}
