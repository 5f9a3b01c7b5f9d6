// Package zap routes clog messages to a go.uber.org/zap logger.
package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cayleygraph/rdfstore/clog"
)

var _ clog.Logger = (*Logger)(nil)

// Logger adapts a zap.SugaredLogger to clog.
type Logger struct {
	s *zap.SugaredLogger
}

// New wraps an existing zap logger.
func New(l *zap.Logger) *Logger {
	return &Logger{s: l.WithOptions(zap.AddCallerSkip(2)).Sugar()}
}

// NewProduction builds a JSON logger at the given level ("debug", "info", ...).
func NewProduction(level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return New(l), nil
}

func (l *Logger) Infof(format string, args ...interface{})    { l.s.Infof(format, args...) }
func (l *Logger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l *Logger) Fatalf(format string, args ...interface{})   { l.s.Fatalf(format, args...) }

// Sync flushes buffered entries.
func (l *Logger) Sync() error { return l.s.Sync() }
