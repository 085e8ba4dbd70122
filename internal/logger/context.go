package logger

import (
	"context"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID attaches id to ctx so every entry logged with ctx carries it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID extracts a correlation ID from ctx. It returns an empty
// string when none has been set.
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// NewCorrelationID produces a new UUIDv4 string. Entry points call it once
// per command execution.
func NewCorrelationID() string {
	return uuid.NewString()
}
