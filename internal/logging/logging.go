// Package logging builds the zap logger dexter writes to.
//
// The terminal belongs to the UI, so logs always go to a file. Every process
// gets a run id so the fan-out of detail requests can be grouped when several
// runs share one log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRunID returns a fresh id for tagging one process's entries.
func NewRunID() string {
	return uuid.NewString()
}

// New returns a JSON logger appending to path. Debug output is enabled with
// verbose and every entry carries run unless it is empty. An empty path
// discards everything.
func New(path string, verbose bool, run string) (*zap.Logger, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if run == "" {
		return logger, nil
	}
	return logger.With(zap.String("run", run)), nil
}
