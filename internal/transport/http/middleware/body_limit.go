package middleware

import "net/http"

// BodyLimit caps the bodies of mutating requests at maxBytes. Draft
// autosaves are the largest payloads this API accepts, so the configured cap
// is sized for them. Reads and deletes carry no body worth limiting, and PDF
// downloads stream in the response direction only.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes <= 0 {
				next.ServeHTTP(w, r)
				return
			}
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
