package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type ctxLoggerKey struct{}

// CtxLoggerKey is the context key holding the per-message logger.
var CtxLoggerKey = ctxLoggerKey{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, CtxLoggerKey, logger)
}

// GetCtxLogger returns the logger stored in ctx, or Transform if there is none.
func GetCtxLogger(ctx context.Context) logrus.FieldLogger {
	if logger, ok := ctx.Value(CtxLoggerKey).(logrus.FieldLogger); ok && logger != nil {
		return logger
	}
	return Transform
}

// SetLoggerFields adds fields to the context logger and stores the result
// back into a new context.
func SetLoggerFields(ctx context.Context, fields logrus.Fields) (context.Context, logrus.FieldLogger) {
	logger := GetCtxLogger(ctx).WithFields(fields)
	return NewContext(ctx, logger), logger
}
