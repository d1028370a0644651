package writer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

type tableWriter struct {
	writer io.Writer
}

// Write outputs one aligned row per field with the data as a list of byte values.
func (w *tableWriter) Write(report Report) error {
	tw := tabwriter.NewWriter(w.writer, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tName\tData"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}

	for _, field := range report.Fields {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n", field.ID, field.Name, byteList(field.Data)); err != nil {
			return fmt.Errorf("writing field %d: %w", field.ID, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// byteList formats the data like [0, 1, 63].
func byteList(data []byte) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	sb.WriteByte(']')
	return sb.String()
}
