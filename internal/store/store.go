// Package store persists decoded register reports in a SQLite database.
package store

import (
	"errors"
	"fmt"

	"github.com/retroenv/extcsd/internal/register"
	"github.com/retroenv/extcsd/internal/writer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one decoded register dump.
type Run struct {
	gorm.Model
	ImageFile  string
	TableFile  string
	Size       int
	FieldCount int
	Fields     []FieldValue `gorm:"foreignKey:RunID"`
}

// FieldValue is the extracted value of a single field of a run.
type FieldValue struct {
	gorm.Model
	RunID    uint `gorm:"index"`
	Position int  // position in the field table
	FieldID  uint16
	Name     string
	Data     string // uppercase hex
}

// Store writes reports to a SQLite database file.
type Store struct {
	db *gorm.DB
}

// Open opens or creates the database and migrates the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite output needs a file name")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &Store{db: db}, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Run{}, &FieldValue{})
}

// Write stores the report as a new run with all its field values.
func (s *Store) Write(report writer.Report) error {
	run := Run{
		ImageFile:  report.ImageFile,
		TableFile:  report.TableFile,
		FieldCount: len(report.Fields),
		Fields:     make([]FieldValue, 0, len(report.Fields)),
	}
	if report.Image != nil {
		run.Size = report.Image.Len()
	}

	for i, field := range report.Fields {
		run.Fields = append(run.Fields, FieldValue{
			Position: i,
			FieldID:  field.ID,
			Name:     field.Name,
			Data:     register.Encode(register.NewImage(field.Data)),
		})
	}

	if err := s.db.Create(&run).Error; err != nil {
		return fmt.Errorf("storing run: %w", err)
	}
	return nil
}

// Runs returns all stored runs with their field values in table order.
func (s *Store) Runs() ([]Run, error) {
	var runs []Run
	err := s.db.
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	return runs, nil
}

// Close closes the database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("getting database handle: %w", err)
	}
	return sqlDB.Close()
}
