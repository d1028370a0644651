package register

import (
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 16, 255, DefaultSize} {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i*7 + size)
		}

		img, err := Decode(Encode(NewImage(data)), size)
		assert.NoError(t, err)
		assert.Equal(t, size, img.Len())
		assert.Equal(t, data, img.Bytes())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
		want []byte
	}{
		{name: "uppercase", text: "00FFA501", size: 4, want: []byte{0x00, 0xff, 0xa5, 0x01}},
		{name: "lowercase", text: "00ffa501", size: 4, want: []byte{0x00, 0xff, 0xa5, 0x01}},
		{name: "mixed case", text: "aB3f", size: 2, want: []byte{0xab, 0x3f}},
		{name: "trailing newline", text: "3F3F\n", size: 2, want: []byte{0x3f, 0x3f}},
		{name: "high nibble first", text: "10", size: 1, want: []byte{0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.text, tt.size)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, img.Bytes())
		})
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	const size = 8

	for _, length := range []int{0, 1, 2, 15, 17, 18, 32} {
		text := strings.Repeat("A", length)
		_, err := Decode(text, size)
		assert.True(t, errors.Is(err, ErrLengthMismatch), "length %d", length)

		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, length, decodeErr.Got)
		assert.Equal(t, 2*size, decodeErr.Want)
	}
}

func TestDecodeOnlyStripsOneNewline(t *testing.T) {
	_, err := Decode("3F3F\n\n", 2)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	_, err = Decode("3F3F\r\n", 2)
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestDecodeInvalidDigit(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantOffset int
		wantChar   byte
	}{
		{name: "letter after F", text: "0G", wantOffset: 1, wantChar: 'G'},
		{name: "space", text: " 0", wantOffset: 0, wantChar: ' '},
		{name: "punctuation", text: "00:0", wantOffset: 2, wantChar: ':'},
		{name: "lowercase is normalized first", text: "0z", wantOffset: 1, wantChar: 'Z'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text, len(tt.text)/2)
			assert.True(t, errors.Is(err, ErrInvalidDigit))

			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tt.wantOffset, decodeErr.Offset)
			assert.Equal(t, tt.wantChar, decodeErr.Char)
			assert.ErrorContains(t, err, "invalid hex digit")
		})
	}
}

func TestDecodeReader(t *testing.T) {
	img, err := DecodeReader(strings.NewReader("0102\n"), 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, img.Bytes())
}

func TestImageRange(t *testing.T) {
	img := NewImage([]byte{0, 1, 2, 3, 4})

	assert.Equal(t, []byte{1, 2, 3}, img.Range(1, 4))
	assert.Equal(t, 0, len(img.Range(3, 3)))
	assert.Equal(t, 0, len(img.Range(4, 1)))

	// returned ranges are copies
	r := img.Range(0, 2)
	r[0] = 0xff
	assert.Equal(t, byte(0), img.Byte(0))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "00FFA501", Encode(NewImage([]byte{0x00, 0xff, 0xa5, 0x01})))
}
