// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

const (
	errUint8RangeExceeded  = "value %d exceeds uint8 range"
	errUint16RangeExceeded = "value %d exceeds uint16 range"
	errUint32RangeExceeded = "value %d exceeds uint32 range"
)

// IntToUint8 safely converts an int to uint8 using cast and checks for overflow
func IntToUint8(value int) (uint8, error) {
	if value < 0 || value > math.MaxUint8 {
		return 0, fmt.Errorf(errUint8RangeExceeded, value)
	}

	return cast.ToUint8E(value)
}

// IntToUint16 safely converts an int to uint16 using cast and checks for overflow
func IntToUint16(value int) (uint16, error) {
	if value < 0 || value > math.MaxUint16 {
		return 0, fmt.Errorf(errUint16RangeExceeded, value)
	}

	return cast.ToUint16E(value)
}

// Int64ToUint32 safely converts an int64 to uint32 using cast and checks for overflow. Unix
// timestamps go through here before they are written as u32.
func Int64ToUint32(value int64) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, fmt.Errorf(errUint32RangeExceeded, value)
	}

	return cast.ToUint32E(value)
}
