// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/retroenv/extcsd/internal/options"
	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/extcsd/internal/writer"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		if opts.Input != "" && opts.Input != args[0] {
			return opts, fmt.Errorf("register dump given twice: %s and %s", opts.Input, args[0])
		}
		opts.Input = args[0]
	}

	if opts.Table == "" {
		return opts, &UsageError{flags: flags, msg: "missing field table, pass it with -j"}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: extcsd [options] -j <field table> <register dump>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after register dump, please pass the register dump as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	if opts.Format != "" && !slices.Contains(writer.Formats, opts.Format) {
		return fmt.Errorf("unsupported output format: %s. Valid options: %s",
			opts.Format, strings.Join(writer.Formats, ", "))
	}

	if opts.Size <= 0 {
		return fmt.Errorf("invalid register size %d", opts.Size)
	}

	if opts.Format == writer.SQLite && opts.Output == "" && opts.Batch == "" {
		return fmt.Errorf("output format %s needs an output file name", writer.SQLite)
	}

	if opts.Token == "" {
		opts.Token = writer.DefaultToken
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "b", "", "name of the register dump text file")
	flags.StringVar(&opts.Table, "j", "", "name of the field table JSON file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", "", "output format (table/json/raw/flat/sqlite), detected from the output file extension if not given")
	flags.StringVar(&opts.Simplify, "simplify", "", "additionally write the flattened field table to this file")
	flags.StringVar(&opts.Token, "token", writer.DefaultToken, "column separator of the flattened field table")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically output file naming, for example dumps/*.txt")
	flags.IntVar(&opts.Size, "size", register.DefaultSize, "register size in bytes")
	flags.BoolVar(&opts.Strict, "strict", false, "reject duplicate field ids, reversed ranges and fields without slice")
	flags.BoolVar(&opts.Verify, "verify", false, "verify that the decoded register re-encodes to the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
