// Package middleware holds the HTTP middleware chain for the sync server.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/TJZine/CertPrep.ai-sub000/internal/server/handlers"
)

// IdentityMiddleware resolves the requesting user and stores the user id
// in the request context. Full authentication lives in a separate layer;
// the X-User-ID header is its stand-in, so requests without it are
// rejected.
func IdentityMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if userID == "" {
				logger.Warn("Request without identity header",
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), handlers.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
