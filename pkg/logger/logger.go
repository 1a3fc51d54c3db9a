package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

type Logger struct {
	l *zap.Logger
}

// New attaches a production logger at the given level ("debug", "info", ...).
func New(ctx context.Context, level string) (context.Context, error) {
	cfg := zap.NewProductionConfig()
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("error creating new logger: %w", err)
	}
	return WithLogger(ctx, &Logger{logger}), nil
}

func Wrap(l *zap.Logger) *Logger {
	return &Logger{l: l}
}

func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// GetLogger never returns nil; a context without a logger yields a no-op one.
func GetLogger(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return &Logger{zap.NewNop()}
}

func (logger *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{logger.l.With(fields...)}
}

func (logger *Logger) Zap() *zap.Logger {
	return logger.l
}

func (logger *Logger) Debug(msg string, fields ...zap.Field) {
	logger.l.Debug(msg, fields...)
}

func (logger *Logger) Info(msg string, fields ...zap.Field) {
	logger.l.Info(msg, fields...)
}

func (logger *Logger) Warn(msg string, fields ...zap.Field) {
	logger.l.Warn(msg, fields...)
}

func (logger *Logger) Error(msg string, fields ...zap.Field) {
	logger.l.Error(msg, fields...)
}

func (logger *Logger) Fatal(msg string, fields ...zap.Field) {
	logger.l.Fatal(msg, fields...)
}

func (logger *Logger) Sync() {
	_ = logger.l.Sync()
}
