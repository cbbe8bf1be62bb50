// Package rlog adapts go.uber.org/zap to the core.Logger interface the
// renderer and CLI depend on.
package rlog

import (
	"go.uber.org/zap"

	"github.com/df07/go-raytracer-core/pkg/core"
)

// ZapLogger implements core.Logger over a zap.SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a ZapLogger using zap's production configuration.
func New() (*ZapLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// NewDevelopment builds a ZapLogger with human-friendly console output,
// useful for the interactive CLI.
func NewDevelopment() (*ZapLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: logger.Sugar()}, nil
}

// Printf logs at info level.
func (l *ZapLogger) Printf(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warnf logs at warn level.
func (l *ZapLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Sync flushes any buffered log entries; callers should defer it after New.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ core.Logger = (*ZapLogger)(nil)
