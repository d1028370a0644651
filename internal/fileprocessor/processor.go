// Package fileprocessor handles file selection and per file processing
package fileprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/extcsd/internal/detector"
	"github.com/retroenv/extcsd/internal/options"
	"github.com/retroenv/extcsd/internal/pipeline"
	"github.com/retroenv/extcsd/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if opts.Format == "" {
		opts.Format = detector.New(logger).Detect(opts)
	}

	w, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := w.(io.Closer); ok && w != io.Writer(os.Stdout) {
			_ = closer.Close()
		}
	}()

	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, w); err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	return nil
}

// ProcessBatch processes every file selected by the options. The output format
// is resolved once for the whole batch. A batch with a database output stores
// all runs in that database, otherwise every input gets its own output file.
func ProcessBatch(ctx context.Context, logger *log.Logger, opts options.Program) error {
	files, err := GetFilesToProcess(&opts)
	if err != nil {
		return err
	}

	opts.Format = detector.New(logger).Detect(opts)
	sharedOutput := opts.Format == writer.SQLite && opts.Output != ""

	var failed int
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" && !sharedOutput {
			opts.Output = GenerateOutputFilename(file, opts.Format)
		}

		if err := ProcessFile(ctx, logger, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("Decoding failed", log.String("file", file), log.Err(err))
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch == "" {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(opts.Batch)
	if err != nil {
		return nil, fmt.Errorf("globbing batch pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, errors.New("no files match the batch pattern")
	}
	return matches, nil
}

// GenerateOutputFilename generates output filename for a given input file and output format.
// It never returns the input file name itself.
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	base := inputFile[:len(inputFile)-len(ext)]
	name := base + writer.Extension(format)
	if name == inputFile {
		name = base + ".decoded" + writer.Extension(format)
	}
	return name
}

// createWriter returns the console or the output file. The sqlite format
// manages its output file itself and gets no writer.
func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Format == writer.SQLite {
		return io.Discard, nil
	}
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("extcsd", log.String("version", buildinfo.Version(version, commit, date)))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
