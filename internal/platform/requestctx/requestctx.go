package requestctx

import "context"

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID stores the id the request-id middleware minted (or accepted
// from an X-Request-ID header) for the lifetime of the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID returns the request id, or "" outside a request scope.
func GetRequestID(ctx context.Context) string {
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}
