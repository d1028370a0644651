// Package sliceref parses the bracket notation used by register sheets to
// reference a part of a register, like [511:506] or [503].
package sliceref

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind of a slice reference.
type Kind int

const (
	// KindNone marks a field without a slice.
	KindNone Kind = iota
	// KindSingle references a single byte.
	KindSingle
	// KindRange references a high:low pair of bounds.
	KindRange
)

var (
	// ErrShape is returned when the notation does not have one or two bounds.
	ErrShape = errors.New("expected format [high:low] or [index]")
	// ErrBound is returned when a bound is not an unsigned 16 bit integer.
	ErrBound = errors.New("expected an integer")
)

// SliceRef is a parsed slice notation.
type SliceRef struct {
	Kind Kind
	High uint16 // upper bound of a range, or the index of a single reference
	Low  uint16 // lower bound of a range
}

// Single returns a reference to one index.
func Single(index uint16) SliceRef {
	return SliceRef{Kind: KindSingle, High: index}
}

// Range returns a high:low reference. The bounds are stored in the given order,
// no ordering between them is enforced.
func Range(high, low uint16) SliceRef {
	return SliceRef{Kind: KindRange, High: high, Low: low}
}

// Index returns the index of a single reference.
func (s SliceRef) Index() uint16 {
	return s.High
}

// Bounds returns the bounds in their textual order.
func (s SliceRef) Bounds() []uint16 {
	switch s.Kind {
	case KindSingle:
		return []uint16{s.High}
	case KindRange:
		return []uint16{s.High, s.Low}
	default:
		return nil
	}
}

func (s SliceRef) String() string {
	switch s.Kind {
	case KindSingle:
		return fmt.Sprintf("[%d]", s.High)
	case KindRange:
		return fmt.Sprintf("[%d:%d]", s.High, s.Low)
	default:
		return "[]"
	}
}

// ParseError describes a slice notation that could not be parsed.
type ParseError struct {
	Text  string // full notation
	Token string // offending part
	Err   error  // ErrShape or ErrBound
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing slice %q: token %q: %s", e.Text, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses the notation [N] or [H:L]. Only a single leading '[' and trailing ']'
// are removed, the first number of a pair becomes the high bound.
func Parse(text string) (SliceRef, error) {
	trimmed := strings.TrimPrefix(text, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	parts := strings.Split(trimmed, ":")

	switch len(parts) {
	case 1:
		index, err := parseBound(text, parts[0])
		if err != nil {
			return SliceRef{}, err
		}
		return Single(index), nil

	case 2:
		high, err := parseBound(text, parts[0])
		if err != nil {
			return SliceRef{}, err
		}
		low, err := parseBound(text, parts[1])
		if err != nil {
			return SliceRef{}, err
		}
		return Range(high, low), nil

	default:
		return SliceRef{}, &ParseError{Text: text, Token: trimmed, Err: ErrShape}
	}
}

func parseBound(text, token string) (uint16, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(token), 10, 16)
	if err != nil {
		return 0, &ParseError{Text: text, Token: token, Err: ErrBound}
	}
	return uint16(value), nil
}
