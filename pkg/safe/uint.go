// Package safe holds checked numeric conversions.
package safe

import "fmt"

// Uint64 widens a signed or unsigned integer to uint64, rejecting negative
// input instead of letting it wrap.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		return signedToUint64(int64(value))
	case int32:
		return signedToUint64(int64(value))
	case int64:
		return signedToUint64(value)
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

func signedToUint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
