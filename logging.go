package phonglight

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes leveled console output through zap. The debug level
// can be toggled at runtime and is safe for concurrent use.
type DefaultLogger struct {
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000")

	base, err := cfg.Build()
	if err != nil {
		base = zap.NewNop()
	}
	return newLogger(base, level, prefix)
}

func newLogger(base *zap.Logger, level zap.AtomicLevel, prefix string) *DefaultLogger {
	if prefix != "" {
		base = base.Named(prefix)
	}
	return &DefaultLogger{
		level: level,
		sugar: base.Sugar(),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	return l.level.Enabled(zapcore.DebugLevel)
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	if enabled {
		l.level.SetLevel(zapcore.DebugLevel)
	} else {
		l.level.SetLevel(zapcore.InfoLevel)
	}
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered log entries.
func (l *DefaultLogger) Sync() error {
	return l.sugar.Sync()
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool { return false }

func (n *nopLogger) SetDebug(enabled bool) {}

func (n *nopLogger) Debugf(format string, args ...any) {}

func (n *nopLogger) Infof(format string, args ...any) {}

func (n *nopLogger) Warnf(format string, args ...any) {}

func (n *nopLogger) Errorf(format string, args ...any) {}
