package middleware

import (
	"gemini-relay/pkg/log"
	"gemini-relay/pkg/metrics"
)

type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
}

func New(l log.Logger, m *metrics.Metrics) Middleware {
	return Middleware{
		l:       l,
		metrics: m,
	}
}
