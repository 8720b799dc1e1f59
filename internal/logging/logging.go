// Package logging builds the zap loggers used by the hosts.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console logger when development
// is set. Output goes to stderr so it never interleaves with frames written
// to stdout.
func New(level string, development bool) (*zap.Logger, error) {
	return build(level, development, "stderr")
}

// ToFile is New writing to path, for hosts that own the terminal.
func ToFile(path, level string, development bool) (*zap.Logger, error) {
	return build(level, development, path)
}

func build(level string, development bool, sink string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{sink}
	cfg.ErrorOutputPaths = []string{sink}
	return cfg.Build()
}
