package instrument

import "context"

type ctxKey int

const correlationIDKey ctxKey = iota

// SetCorrelationID stores the request correlation id on the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey, cid)
}

// GetCorrelationID returns the correlation id from the context, if any.
func GetCorrelationID(ctx context.Context) string {
	if cid, ok := ctx.Value(correlationIDKey).(string); ok {
		return cid
	}
	return ""
}
