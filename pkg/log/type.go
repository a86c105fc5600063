package log

import "go.uber.org/zap"

// ZapConfig holds the logger settings read from configuration.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type requestIDKey struct{}
