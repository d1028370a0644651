// Package register decodes textual hex dumps of device configuration registers
// like the eMMC Extended CSD into fixed size byte images.
package register

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// DefaultSize is the size in bytes of an eMMC Extended CSD register.
const DefaultSize = 512

// Image is the read-only decoded content of a register.
type Image struct {
	data []byte
}

// NewImage returns an image holding a copy of the given bytes.
func NewImage(data []byte) *Image {
	return &Image{data: append([]byte(nil), data...)}
}

// Len returns the size of the image in bytes.
func (img *Image) Len() int {
	return len(img.data)
}

// Byte returns the byte at the given index. The caller has to check the bounds.
func (img *Image) Byte(index int) byte {
	return img.data[index]
}

// Range returns a copy of the bytes in the half open interval [low, high).
// A reversed or empty interval returns an empty slice.
func (img *Image) Range(low, high int) []byte {
	if low >= high {
		return []byte{}
	}
	return append([]byte(nil), img.data[low:high]...)
}

// Bytes returns a copy of the whole image.
func (img *Image) Bytes() []byte {
	return append([]byte(nil), img.data...)
}

// Decode converts the hex text of a register dump into an image of the expected size.
// A single trailing newline is ignored and the digits are case insensitive, every other
// character is treated as data.
func Decode(text string, size int) (*Image, error) {
	text = strings.TrimSuffix(text, "\n")
	text = strings.ToUpper(text)

	if want := size * 2; len(text) != want {
		return nil, &DecodeError{
			Err:  ErrLengthMismatch,
			Got:  len(text),
			Want: want,
		}
	}

	data := make([]byte, size)
	for i := 0; i < len(text); i += 2 {
		high, ok := nibble(text[i])
		if !ok {
			return nil, &DecodeError{Err: ErrInvalidDigit, Offset: i, Char: text[i]}
		}
		low, ok := nibble(text[i+1])
		if !ok {
			return nil, &DecodeError{Err: ErrInvalidDigit, Offset: i + 1, Char: text[i+1]}
		}
		data[i/2] = high<<4 | low
	}

	return &Image{data: data}, nil
}

// DecodeReader reads the whole hex text from the reader and decodes it.
func DecodeReader(reader io.Reader, size int) (*Image, error) {
	text, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading register dump: %w", err)
	}
	return Decode(string(text), size)
}

// Encode returns the uppercase hex text of the image, high nibble first.
func Encode(img *Image) string {
	return strings.ToUpper(hex.EncodeToString(img.data))
}

// nibble maps an uppercase hex digit to its 4 bit value.
func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
