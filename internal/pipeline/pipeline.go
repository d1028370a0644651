// Package pipeline orchestrates the register decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/extcsd/internal/detector"
	"github.com/retroenv/extcsd/internal/extract"
	"github.com/retroenv/extcsd/internal/fieldtable"
	"github.com/retroenv/extcsd/internal/loader"
	"github.com/retroenv/extcsd/internal/options"
	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/extcsd/internal/store"
	"github.com/retroenv/extcsd/internal/verification"
	"github.com/retroenv/extcsd/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete decoding pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*writer.Report, error) {
	img, err := p.loader.LoadImage(opts.Input, opts.Size)
	if err != nil {
		return nil, fmt.Errorf("loading register dump: %w", err)
	}
	p.logger.Debug("Decoded register dump",
		log.String("file", opts.Input),
		log.Int("size", img.Len()))

	table, err := p.loader.LoadTable(opts.Table, fieldtable.Options{Strict: opts.Strict})
	if err != nil {
		return nil, fmt.Errorf("loading field table: %w", err)
	}
	p.logger.Debug("Loaded field table",
		log.String("file", opts.Table),
		log.Int("fields", table.Len()))

	return p.ExecuteWithData(ctx, img, table, opts, w)
}

// ExecuteWithData runs the pipeline with an already decoded image and loaded field table.
// This is useful for testing and programmatic usage where the inputs are already in memory.
func (p *Pipeline) ExecuteWithData(ctx context.Context, img *register.Image, table *fieldtable.Table,
	opts options.Program, w io.Writer) (*writer.Report, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields, err := extract.All(table, img)
	if err != nil {
		return nil, fmt.Errorf("extracting fields: %w", err)
	}

	report := &writer.Report{
		ImageFile: opts.Input,
		TableFile: opts.Table,
		Image:     img,
		Table:     table,
		Fields:    fields,
	}

	format := opts.Format
	if format == "" {
		format = p.detector.Detect(opts)
	}
	if err := p.writeReport(format, opts, w, *report); err != nil {
		return nil, fmt.Errorf("writing %s output: %w", format, err)
	}

	if opts.Simplify != "" {
		if err := p.writeSimplified(opts, table); err != nil {
			return nil, err
		}
	}

	if opts.Verify {
		if err := verification.VerifyImage(p.logger, opts.Input, img); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	p.printInfo(opts, format, report)
	return report, nil
}

// writeReport outputs the report using the sink of the format.
func (p *Pipeline) writeReport(format string, opts options.Program, w io.Writer, report writer.Report) error {
	if format == writer.SQLite {
		db, err := store.Open(opts.Output)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer func() { _ = db.Close() }()
		return db.Write(report)
	}

	sink, err := writer.New(format, w, writer.Options{Token: opts.Token})
	if err != nil {
		return fmt.Errorf("creating sink: %w", err)
	}
	return sink.Write(report)
}

// writeSimplified writes the flattened field table to the extra output file.
func (p *Pipeline) writeSimplified(opts options.Program, table *fieldtable.Table) error {
	file, err := os.Create(opts.Simplify)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", opts.Simplify, err)
	}

	token := opts.Token
	if token == "" {
		token = writer.DefaultToken
	}
	if err := table.WriteSimplified(file, token); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing simplified table: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", opts.Simplify, err)
	}
	return nil
}

// printInfo prints information about the processed register dump.
func (p *Pipeline) printInfo(opts options.Program, format string, report *writer.Report) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processed register dump",
		log.String("file", opts.Input),
		log.String("table", opts.Table),
		log.Int("fields", len(report.Fields)),
		log.String("format", format),
	)
}
