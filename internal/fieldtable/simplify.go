package fieldtable

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/retroenv/extcsd/internal/sliceref"
)

const noSlice = "No CSD Slice"

// WriteSimplified writes a flattened text version of the table, one field per line:
// id, name and the slice bounds joined by the token. A single index is followed
// by 65535 as open upper bound.
func (t *Table) WriteSimplified(writer io.Writer, token string) error {
	buf := bufio.NewWriter(writer)
	for _, field := range t.fields {
		line := strconv.Itoa(int(field.ID)) + token + field.Name + token + simplifiedSlice(field.Slice, token)
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return fmt.Errorf("writing field %d: %w", field.ID, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing simplified table: %w", err)
	}
	return nil
}

func simplifiedSlice(slice sliceref.SliceRef, token string) string {
	bounds := slice.Bounds()
	switch len(bounds) {
	case 2:
		return fmt.Sprintf("%d%s%d", bounds[0], token, bounds[1])
	case 1:
		return fmt.Sprintf("%d%s%d", bounds[0], token, math.MaxUint16)
	default:
		return noSlice
	}
}
