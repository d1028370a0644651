package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/extcsd/internal/options"
	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"prog"}, args...)

	return ParseFlags()
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"-j", "sheet.json", "binary.txt"},
			want: options.Program{
				Parameters: options.Parameters{Input: "binary.txt", Table: "sheet.json"},
				Flags:      options.Flags{Token: ",", Size: register.DefaultSize},
			},
		},
		{
			name: "input as flag",
			args: []string{"-j", "sheet.json", "-b", "binary.txt"},
			want: options.Program{
				Parameters: options.Parameters{Input: "binary.txt", Table: "sheet.json"},
				Flags:      options.Flags{Token: ",", Size: register.DefaultSize},
			},
		},
		{
			name: "all flags",
			args: []string{"-j", "sheet.json", "-o", "out.db", "-f", "SQLITE", "-size", "16",
				"-simplify", "sheet.conf", "-token", ";", "-strict", "-verify", "-debug", "-q", "binary.txt"},
			want: options.Program{
				Parameters: options.Parameters{Input: "binary.txt", Table: "sheet.json", Output: "out.db", Simplify: "sheet.conf"},
				Flags: options.Flags{Format: "sqlite", Token: ";", Size: 16,
					Strict: true, Verify: true, Debug: true, Quiet: true},
			},
		},
		{
			name: "batch without positional",
			args: []string{"-j", "sheet.json", "-batch", "dumps/*.txt"},
			want: options.Program{
				Parameters: options.Parameters{Table: "sheet.json", Batch: "dumps/*.txt"},
				Flags:      options.Flags{Token: ",", Size: register.DefaultSize},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "no arguments", args: nil, wantUsage: true},
		{name: "missing field table", args: []string{"binary.txt"}, wantUsage: true},
		{name: "flag after input", args: []string{"-j", "sheet.json", "binary.txt", "-q"}, wantUsage: true},
		{name: "input given twice", args: []string{"-j", "sheet.json", "-b", "a.txt", "b.txt"}},
		{name: "unknown format", args: []string{"-j", "sheet.json", "-f", "xml", "binary.txt"}},
		{name: "invalid size", args: []string{"-j", "sheet.json", "-size", "0", "binary.txt"}},
		{name: "sqlite on console", args: []string{"-j", "sheet.json", "-f", "sqlite", "binary.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestNormalizeOptions(t *testing.T) {
	opts := options.Program{
		Flags: options.Flags{Format: "JSON", Size: 4},
	}
	assert.NoError(t, normalizeOptions(&opts))
	assert.Equal(t, "json", opts.Format)
	assert.Equal(t, ",", opts.Token)

	opts = options.Program{
		Parameters: options.Parameters{Batch: "*.txt"},
		Flags:      options.Flags{Format: "sqlite", Size: 4},
	}
	assert.NoError(t, normalizeOptions(&opts))
}
