package middleware

import (
	"context"
	"net/http"
	"strings"

	"slipgen/internal/domain/auth"
	"slipgen/internal/transport/http/api"
)

type ctxKey string

const ctxKeyOwner ctxKey = "owner"

// Auth attaches the owner identity from a valid bearer token. Requests
// without a usable token pass through anonymous; RequireOwner gates the
// routes that need one.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyOwner, auth.OwnerContext{
				OwnerID:    claims.OwnerID,
				Email:      claims.Email,
				ParentMode: claims.ParentMode,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetOwner(ctx context.Context) (auth.OwnerContext, bool) {
	owner, ok := ctx.Value(ctxKeyOwner).(auth.OwnerContext)
	return owner, ok
}

// RequireOwner rejects unauthenticated requests before they reach handlers.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetOwner(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
