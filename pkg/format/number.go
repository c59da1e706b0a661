package format

import (
	"strconv"
	"strings"
)

// Integer is the set of integer types accepted by Number.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number renders n in decimal with "." between groups of three digits,
// e.g. 1234567 becomes "1.234.567".
func Number[T Integer](n T) string {
	if n < 0 {
		return GroupDigits(strconv.FormatInt(int64(n), 10))
	}
	return GroupDigits(strconv.FormatUint(uint64(n), 10))
}

// GroupDigits inserts "." into s before every position that follows a word
// character and precedes a run of digits whose length is a positive multiple
// of three and which is not followed by another digit. Decimal points get no
// special treatment: the string is processed literally.
func GroupDigits(s string) string {
	if len(s) < 4 {
		return s
	}

	// runEnd[i] is the index just past the digit run that contains i.
	runEnd := make([]int, len(s)+1)
	runEnd[len(s)] = len(s)
	for i := len(s) - 1; i >= 0; i-- {
		if isDigit(s[i]) {
			if i+1 < len(s) && isDigit(s[i+1]) {
				runEnd[i] = runEnd[i+1]
			} else {
				runEnd[i] = i + 1
			}
		} else {
			runEnd[i] = i
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && isWordChar(s[i-1]) && isDigit(s[i]) {
			if n := runEnd[i] - i; n%3 == 0 {
				b.WriteByte('.')
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
