// Package extract resolves field slices against a decoded register image.
package extract

import (
	"errors"
	"fmt"

	"github.com/retroenv/extcsd/internal/fieldtable"
	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/extcsd/internal/sliceref"
)

var (
	// ErrIndexOutOfBounds is returned when a slice reaches past the end of the image.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrUnsupportedArity is returned for slices that have neither one nor two bounds.
	ErrUnsupportedArity = errors.New("slice needs 1 or 2 bounds")
)

// ExtractError describes a slice that could not be resolved against an image.
type ExtractError struct {
	Slice sliceref.SliceRef
	Len   int // image length
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("slice %s of %d byte image: %s", e.Slice, e.Len, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// Field is the extracted value of a table field.
type Field struct {
	ID   uint16
	Name string
	Data []byte
}

// Extract returns a copy of the bytes referenced by the slice.
//
// A range [high:low] returns the bytes from low up to but excluding high, so
// [511:506] yields the 5 bytes 506 to 510. Existing exports depend on this
// exclusive upper bound, it is intentionally not treated as inclusive.
// Reversed or empty ranges return no bytes.
func Extract(slice sliceref.SliceRef, img *register.Image) ([]byte, error) {
	switch slice.Kind {
	case sliceref.KindSingle:
		index := int(slice.Index())
		if index >= img.Len() {
			return nil, &ExtractError{Slice: slice, Len: img.Len(), Err: ErrIndexOutOfBounds}
		}
		return []byte{img.Byte(index)}, nil

	case sliceref.KindRange:
		high := int(slice.High)
		if high > img.Len() {
			return nil, &ExtractError{Slice: slice, Len: img.Len(), Err: ErrIndexOutOfBounds}
		}
		return img.Range(int(slice.Low), high), nil

	default:
		return nil, &ExtractError{Slice: slice, Len: img.Len(), Err: ErrUnsupportedArity}
	}
}

// All extracts every field of the table in table order and stops at the first error.
func All(table *fieldtable.Table, img *register.Image) ([]Field, error) {
	fields := make([]Field, 0, table.Len())
	for _, desc := range table.Fields() {
		data, err := Extract(desc.Slice, img)
		if err != nil {
			return nil, fmt.Errorf("extracting field %d '%s': %w", desc.ID, desc.Name, err)
		}
		fields = append(fields, Field{
			ID:   desc.ID,
			Name: desc.Name,
			Data: data,
		})
	}
	return fields, nil
}
