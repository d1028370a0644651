package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/extcsd/internal/fieldtable"
	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/extcsd/internal/sliceref"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoadImage(t *testing.T) {
	t.Run("load register dump", func(t *testing.T) {
		text := strings.Repeat("00", 510) + "3f01\n"
		tmpFile := createTempFile(t, "binary.txt", []byte(text))

		ldr := New()
		img, err := ldr.LoadImage(tmpFile, register.DefaultSize)
		assert.NoError(t, err)
		assert.Equal(t, register.DefaultSize, img.Len())
		assert.Equal(t, byte(0x3f), img.Byte(510))
		assert.Equal(t, byte(0x01), img.Byte(511))
	})

	t.Run("error on wrong size", func(t *testing.T) {
		tmpFile := createTempFile(t, "binary.txt", []byte(strings.Repeat("00", 16)))

		ldr := New()
		_, err := ldr.LoadImage(tmpFile, register.DefaultSize)
		assert.True(t, errors.Is(err, register.ErrLengthMismatch))
		assert.ErrorContains(t, err, tmpFile)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		ldr := New()
		_, err := ldr.LoadImage("/nonexistent/binary.txt", register.DefaultSize)
		assert.Error(t, err)
	})
}

func TestLoadTable(t *testing.T) {
	t.Run("load field table", func(t *testing.T) {
		data := `{"array":[{"id":1,"data":{"Name":"Reserved","Field":null,"Size":6,"type":"TBD","CSD-slice":"[511:506]"}}]}`
		tmpFile := createTempFile(t, "sheet.json", []byte(data))

		ldr := New()
		table, err := ldr.LoadTable(tmpFile, fieldtable.Options{})
		assert.NoError(t, err)
		assert.Equal(t, 1, table.Len())
		assert.Equal(t, sliceref.Range(511, 506), table.Fields()[0].Slice)
	})

	t.Run("strict option is applied", func(t *testing.T) {
		data := `{"array":[{"id":1,"data":{"Name":"a","Size":1,"type":"R","CSD-slice":"[1]"}},{"id":1,"data":{"Name":"b","Size":1,"type":"R","CSD-slice":"[2]"}}]}`
		tmpFile := createTempFile(t, "sheet.json", []byte(data))

		ldr := New()
		_, err := ldr.LoadTable(tmpFile, fieldtable.Options{Strict: true})
		assert.True(t, errors.Is(err, fieldtable.ErrDuplicateID))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		ldr := New()
		_, err := ldr.LoadTable("/nonexistent/sheet.json", fieldtable.Options{})
		assert.Error(t, err)
	})
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
