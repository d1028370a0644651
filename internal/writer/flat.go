package writer

import (
	"fmt"
	"io"
)

type flatWriter struct {
	writer io.Writer
	token  string
}

// Write outputs the simplified field table.
func (w *flatWriter) Write(report Report) error {
	if err := report.Table.WriteSimplified(w.writer, w.token); err != nil {
		return fmt.Errorf("writing simplified table: %w", err)
	}
	return nil
}
