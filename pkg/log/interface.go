package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger is a context-aware leveled logger.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
}

// Init builds a zap-backed Logger from cfg.
func Init(cfg ZapConfig) Logger {
	return NewWithZap(zap.Must(buildZap(cfg)))
}

// NewWithZap wraps an existing zap logger. Tests use it with zaptest/observer.
func NewWithZap(z *zap.Logger) Logger {
	return &zapLogger{sugar: z.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}
