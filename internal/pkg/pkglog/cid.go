package pkglog

import "context"

type correlationKey struct{}

// CorrelationID returns the correlation ID stored in ctx. ok is false for
// contexts that never passed through the HTTP middleware, such as CLI runs.
func CorrelationID(ctx context.Context) (cid string, ok bool) {
	cid, ok = ctx.Value(correlationKey{}).(string)
	return cid, ok && cid != ""
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}
