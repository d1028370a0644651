// Package loader handles register dump and field table file loading.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/extcsd/internal/fieldtable"
	"github.com/retroenv/extcsd/internal/register"
)

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new loader.
func New() *Loader {
	return &Loader{}
}

// LoadImage reads a register dump text file and decodes it into an image of the given size.
func (l *Loader) LoadImage(path string, size int) (*register.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	img, err := register.DecodeReader(file, size)
	if err != nil {
		return nil, fmt.Errorf("decoding register dump %s: %w", path, err)
	}
	return img, nil
}

// LoadTable reads a JSON field table file.
func (l *Loader) LoadTable(path string, opts fieldtable.Options) (*fieldtable.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	table, err := fieldtable.Load(file, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return table, nil
}
