package fieldtable

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned for input that is not a valid field table document.
	ErrMalformed = errors.New("malformed field table")
	// ErrMissingField is returned when a required attribute of the document or a record is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrDuplicateID is returned in strict mode when an identifier is used twice.
	ErrDuplicateID = errors.New("duplicate field identifier")
	// ErrReversedRange is returned in strict mode for ranges whose high bound is not above the low bound.
	ErrReversedRange = errors.New("range high bound is not above low bound")
	// ErrMissingSlice is returned in strict mode for fields without a slice.
	ErrMissingSlice = errors.New("field has no slice")
)

// LoadError identifies the record of the field table that failed to load.
type LoadError struct {
	Record int // position in the table, -1 if the whole document is affected
	ID     int // identifier of the record, -1 if unknown
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Record < 0:
		return fmt.Sprintf("loading field table: %s", e.Err)
	case e.ID < 0:
		return fmt.Sprintf("loading field table record %d: %s", e.Record, e.Err)
	default:
		return fmt.Sprintf("loading field table record %d (id %d): %s", e.Record, e.ID, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
