package writer

import (
	"encoding/hex"
	"fmt"
	"io"
)

type rawWriter struct {
	writer io.Writer
}

// Write outputs the whole decoded register as hex dump.
func (w *rawWriter) Write(report Report) error {
	dumper := hex.Dumper(w.writer)
	if _, err := dumper.Write(report.Image.Bytes()); err != nil {
		return fmt.Errorf("writing hex dump: %w", err)
	}
	if err := dumper.Close(); err != nil {
		return fmt.Errorf("closing hex dump: %w", err)
	}
	return nil
}
