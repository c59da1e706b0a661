package format

import (
	"errors"
	"fmt"
	"math"
)

// ErrBytesOutOfRange is returned by Bytes for negative sizes and for sizes
// that would need a unit larger than TB.
var ErrBytesOutOfRange = errors.New("byte size out of range")

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// Bytes renders n using base-1024 units with two decimals, e.g. "1.50 KB".
// Zero renders as "0 Bytes". The unit is floor(log1024(n)).
func Bytes(n int64) (string, error) {
	if n == 0 {
		return "0 Bytes", nil
	}
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrBytesOutOfRange, n)
	}

	i := 0
	for v := n; v >= 1024; v /= 1024 {
		i++
	}
	if i >= len(byteUnits) {
		return "", fmt.Errorf("%w: %d exceeds %s", ErrBytesOutOfRange, n, byteUnits[len(byteUnits)-1])
	}

	value := float64(n) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%.2f %s", value, byteUnits[i]), nil
}

// MustBytes is like Bytes but panics on out-of-range input.
func MustBytes(n int64) string {
	s, err := Bytes(n)
	if err != nil {
		panic(err)
	}
	return s
}
