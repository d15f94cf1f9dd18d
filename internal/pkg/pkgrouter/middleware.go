package pkgrouter

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// defaultStack is the chain every route runs first. The recoverer must stay
// outermost and the correlation ID must be set before the body limit
// answers 413.
func defaultStack(ids Generator, bodyLimit int64) []Middleware {
	return []Middleware{
		middlewareRecoverer,
		middlewareCorrelationID(ids),
		middlewareBodyLimit(bodyLimit),
		middlewareLogging,
	}
}

// Chain wraps h so that mws[0] runs first. Nil entries are skipped.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		h = mws[i](h)
	}
	return h
}
