// Package fieldtable loads register sheet field descriptions from JSON.
package fieldtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/extcsd/internal/sliceref"
	"github.com/retroenv/retrogolib/set"
)

// Descriptor describes a single field of a register sheet.
type Descriptor struct {
	ID    uint16
	Name  string
	Slice sliceref.SliceRef

	// Metadata that is carried through without being interpreted.
	Field string // field code, empty if not set
	Size  int    // declared width
	Type  string // access type tag
}

// Options control the validation done while loading.
type Options struct {
	// Strict rejects duplicate identifiers, reversed or empty ranges and fields without a slice.
	Strict bool
}

// Table is the ordered list of field descriptors of a register sheet.
type Table struct {
	fields []Descriptor
	index  map[uint16]int
}

type document struct {
	Array *[]json.RawMessage `json:"array"`
}

type record struct {
	ID   *uint16     `json:"id"`
	Data *recordData `json:"data"`
}

type recordData struct {
	Name  *string `json:"Name"`
	Field *string `json:"Field"`
	Size  *int    `json:"Size"`
	Type  *string `json:"type"`
	Slice *string `json:"CSD-slice"`
}

// New returns a table of the given descriptors in their order.
func New(fields []Descriptor) *Table {
	t := &Table{
		fields: fields,
		index:  make(map[uint16]int, len(fields)),
	}
	for i, field := range fields {
		if _, ok := t.index[field.ID]; !ok {
			t.index[field.ID] = i
		}
	}
	return t
}

// Load parses a JSON register sheet of the form
//
//	{"array":[{"id":1,"data":{"Name":"...","Field":null,"Size":6,"type":"TBD","CSD-slice":"[511:506]"}}]}
//
// A missing or empty slice is loaded as a field without slice.
func Load(reader io.Reader, opts Options) (*Table, error) {
	var doc document
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&doc); err != nil {
		return nil, &LoadError{Record: -1, ID: -1, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &LoadError{Record: -1, ID: -1, Err: fmt.Errorf("%w: data after the document", ErrMalformed)}
	}
	if doc.Array == nil {
		return nil, &LoadError{Record: -1, ID: -1, Err: fmt.Errorf("%w: array", ErrMissingField)}
	}

	fields := make([]Descriptor, 0, len(*doc.Array))
	for i, raw := range *doc.Array {
		field, err := decodeRecord(raw)
		if err != nil {
			return nil, &LoadError{Record: i, ID: recordID(raw), Err: err}
		}
		fields = append(fields, field)
	}

	t := New(fields)
	if opts.Strict {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func decodeRecord(raw json.RawMessage) (Descriptor, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return convertRecord(rec)
}

// recordID returns the identifier of a record that failed to load, or -1
// if the identifier itself is missing or invalid.
func recordID(raw json.RawMessage) int {
	var rec struct {
		ID *uint16 `json:"id"`
	}
	if err := json.Unmarshal(raw, &rec); err != nil || rec.ID == nil {
		return -1
	}
	return int(*rec.ID)
}

func convertRecord(rec record) (Descriptor, error) {
	if rec.ID == nil {
		return Descriptor{}, fmt.Errorf("%w: id", ErrMissingField)
	}
	if rec.Data == nil {
		return Descriptor{}, fmt.Errorf("%w: data", ErrMissingField)
	}
	data := rec.Data
	if data.Name == nil || *data.Name == "" {
		return Descriptor{}, fmt.Errorf("%w: Name", ErrMissingField)
	}
	if data.Size == nil {
		return Descriptor{}, fmt.Errorf("%w: Size", ErrMissingField)
	}
	if data.Type == nil {
		return Descriptor{}, fmt.Errorf("%w: type", ErrMissingField)
	}

	field := Descriptor{
		ID:   *rec.ID,
		Name: *data.Name,
		Size: *data.Size,
		Type: *data.Type,
	}
	if data.Field != nil {
		field.Field = *data.Field
	}

	if data.Slice != nil && *data.Slice != "" {
		slice, err := sliceref.Parse(*data.Slice)
		if err != nil {
			return Descriptor{}, err
		}
		field.Slice = slice
	}
	return field, nil
}

// Validate checks the invariants that are not enforced by default: unique
// identifiers, ranges with a high bound above the low bound and a slice for every field.
func (t *Table) Validate() error {
	seen := set.New[uint16]()
	for i, field := range t.fields {
		if seen.Contains(field.ID) {
			return &LoadError{Record: i, ID: int(field.ID), Err: ErrDuplicateID}
		}
		seen.Add(field.ID)

		switch field.Slice.Kind {
		case sliceref.KindNone:
			return &LoadError{Record: i, ID: int(field.ID), Err: ErrMissingSlice}
		case sliceref.KindRange:
			if field.Slice.High <= field.Slice.Low {
				return &LoadError{Record: i, ID: int(field.ID),
					Err: fmt.Errorf("%w: %s", ErrReversedRange, field.Slice)}
			}
		}
	}
	return nil
}

// Fields returns the descriptors in table order.
func (t *Table) Fields() []Descriptor {
	return t.fields
}

// Len returns the number of fields.
func (t *Table) Len() int {
	return len(t.fields)
}

// ByID returns the first descriptor with the given identifier.
func (t *Table) ByID(id uint16) (Descriptor, bool) {
	i, ok := t.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return t.fields[i], true
}
