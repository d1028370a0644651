// Package config handles application setup shared by the entry point and tests.
package config

import (
	"github.com/retroenv/extcsd/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the debug and quiet options.
// Debug logging wins if both are set.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
