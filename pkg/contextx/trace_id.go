package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

// NewTraceID возвращает новый xid (20 символов base32).
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}

// EnsureTraceID оставляет trace id из ctx или кладёт новый.
func EnsureTraceID(ctx context.Context) (context.Context, TraceID) {
	if traceID, err := TraceIDFromContext(ctx); err == nil && traceID != "" {
		return ctx, traceID
	}

	traceID := NewTraceID()

	return WithTraceID(ctx, traceID), traceID
}
