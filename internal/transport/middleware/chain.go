package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one runs outermost:
// Chain(a, b)(h) is a(b(h)). Nil entries are skipped, which lets callers
// leave optional middleware such as rate limits unset.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}
