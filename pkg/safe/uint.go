// Package safe converts between integer types with range checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint8 converts v to uint8, rejecting negatives and values above 255.
func Uint8[T Integer](v T) (uint8, error) {
	if !fits(v, math.MaxUint8) {
		return 0, fmt.Errorf("value %d out of uint8 range", v)
	}
	return uint8(v), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if !fits(v, math.MaxUint64) {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

func fits[T Integer](v T, limit uint64) bool {
	return v >= 0 && uint64(v) <= limit
}
