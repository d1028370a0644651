// Package writer implements the output formats of a decoded register.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/extcsd/internal/extract"
	"github.com/retroenv/extcsd/internal/fieldtable"
	"github.com/retroenv/extcsd/internal/register"
)

// Output format names.
const (
	Table  = "table"
	JSON   = "json"
	Raw    = "raw"
	Flat   = "flat"
	SQLite = "sqlite"
)

// Formats lists all supported output formats.
var Formats = []string{Table, JSON, Raw, Flat, SQLite}

// DefaultToken separates the columns of the flat format.
const DefaultToken = ","

// Report is the result of decoding one register dump.
type Report struct {
	ImageFile string
	TableFile string

	Image  *register.Image
	Table  *fieldtable.Table
	Fields []extract.Field
}

// Sink outputs a report. Sinks are shared by the different output formats, the
// format constructors return this interface.
type Sink interface {
	Write(report Report) error
}

// Options of the text based sinks.
type Options struct {
	Token string // column separator of the flat format
}

// New returns the sink for the given text based format.
// The sqlite format is handled by the store package as it does not write to a stream.
func New(format string, writer io.Writer, opts Options) (Sink, error) {
	switch strings.ToLower(format) {
	case Table:
		return &tableWriter{writer: writer}, nil
	case JSON:
		return &jsonWriter{writer: writer}, nil
	case Raw:
		return &rawWriter{writer: writer}, nil
	case Flat:
		token := opts.Token
		if token == "" {
			token = DefaultToken
		}
		return &flatWriter{writer: writer, token: token}, nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
}

// Extension returns the file extension used for the format.
func Extension(format string) string {
	switch format {
	case JSON:
		return ".json"
	case Raw:
		return ".dump"
	case Flat:
		return ".conf"
	case SQLite:
		return ".db"
	default:
		return ".txt"
	}
}
