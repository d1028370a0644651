package register

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when the text does not hold two digits per register byte.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidDigit is returned for characters that are not hex digits.
	ErrInvalidDigit = errors.New("invalid hex digit")
)

// DecodeError describes why a register dump could not be decoded.
type DecodeError struct {
	Err error // ErrLengthMismatch or ErrInvalidDigit

	Got  int // character count of the input
	Want int // expected character count

	Offset int  // character offset of the invalid digit
	Char   byte // the invalid character
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrInvalidDigit) {
		return fmt.Sprintf("%s %q at offset %d", e.Err, e.Char, e.Offset)
	}
	return fmt.Sprintf("%s: got %d characters, expected %d", e.Err, e.Got, e.Want)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
