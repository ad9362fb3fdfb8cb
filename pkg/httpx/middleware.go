package httpx

import "net/http"

// Middleware wraps a handler with cross-cutting behaviour.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws run in the order given: the first middleware sees
// the request first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequireSubject rejects requests that reached it without an authenticated
// subject in the context. Session middleware must run before it.
func RequireSubject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SubjectFromContext(r.Context()); !ok {
			WriteJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "unauthenticated",
				"error_description": "a valid session is required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
