// Package stream collects the contents of readers into memory.
package stream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrTooLarge is returned by ToBufferLimit when the stream exceeds the limit.
var ErrTooLarge = errors.New("stream exceeds size limit")

// ToBuffer reads r until EOF and returns everything read. On a read error the
// bytes received so far are returned together with the error.
func ToBuffer(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	return buf.Bytes(), err
}

// ToBufferLimit is like ToBuffer but stops with ErrTooLarge once more than
// limit bytes are available. The returned data is truncated to limit bytes in
// that case.
func ToBufferLimit(r io.Reader, limit int64) ([]byte, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrTooLarge, limit)
	}

	if limit == math.MaxInt64 {
		return ToBuffer(r)
	}

	data, err := ToBuffer(io.LimitReader(r, limit+1))
	if err != nil {
		return data, err
	}
	if int64(len(data)) > limit {
		return data[:limit], fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return data, nil
}
