// Package logging builds the debug logger. The TUI owns the terminal, so
// logs go to a file; without --debug-log everything is a nop.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a file-backed logger for path, or a nop logger when path is
// empty. The cleanup func flushes buffered entries.
func New(path string) (*zap.Logger, func(), error) {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop(), func() {}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	log, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return log, func() { _ = log.Sync() }, nil
}
