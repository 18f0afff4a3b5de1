package mdhtml

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or appears to be
// binary. Errors wrap ErrInvalidUTF8 or ErrBinaryInput and carry the byte
// offset of the first offending byte where one exists.
func ValidateInput(src []byte) error {
	var control int
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at byte %d", ErrInvalidUTF8, i)
		}
		if r == 0 {
			return fmt.Errorf("%w: NUL at byte %d", ErrBinaryInput, i)
		}
		if isControlRune(r) {
			control++
		}
		i += size
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return fmt.Errorf("%w: %d control characters in %d bytes", ErrBinaryInput, control, len(src))
	}
	return nil
}

func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '\v', '\f':
		return false
	}
	return r < 0x20 || r == 0x7F
}
