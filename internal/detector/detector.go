// Package detector handles output format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/extcsd/internal/options"
	"github.com/retroenv/extcsd/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles output format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the output format from options or the output file name.
// An explicitly specified format always wins, console output defaults to a table.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Format != "" {
		return strings.ToLower(opts.Format)
	}

	format := d.detectFromFile(opts.Output)
	d.logger.Debug("Auto-detected output format",
		log.String("format", format),
		log.String("file", opts.Output))
	return format
}

// detectFromFile determines the output format based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return writer.JSON
	case ".db", ".sqlite", ".sqlite3":
		return writer.SQLite
	case ".conf", ".csv":
		return writer.Flat
	case ".dump", ".hex":
		return writer.Raw
	default:
		return writer.Table
	}
}
