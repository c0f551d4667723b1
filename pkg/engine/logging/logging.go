// Package logging builds the diagnostics logger.
//
// Player-facing output never goes through here; it lands in the game log.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = "info"

// New returns a JSON logger writing to path at the given level.
// An empty path yields a no-op logger so the terminal UI owns stdout.
func New(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if level == "" {
		level = DefaultLevel
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = lvl
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
