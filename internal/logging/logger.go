// Package logging builds the session logger. Logs go to
// .gemflow/logs/gemflow.log so failures can be inspected after the
// terminal session closes; the TUI owns stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/caiomarinho/gemflow/internal/config"
)

// New creates (or reuses) the log file for the current project
// directory and returns a logger writing to it.
func New(projectDir string) (*zap.Logger, error) {
	logDir := filepath.Join(projectDir, config.GemflowDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, "gemflow.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(f),
		zapcore.DebugLevel,
	)
	return zap.New(core), nil
}
