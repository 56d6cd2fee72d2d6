package auth

import (
	"context"
	"log/slog"
	"net/http"

	"slotBooker/internal/lib/api/response"
	"slotBooker/internal/lib/jwt"
	"slotBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	isAdminKey
)

// New returns a middleware that requires a valid bearer token and puts
// the caller's identity into the request context.
func New(log *slog.Logger, tokens *jwt.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := jwt.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				log.Info("missing bearer token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or malformed authorization header"))
				return
			}

			claims, err := tokens.Validate(tokenStr)
			if err != nil {
				log.Info("invalid token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				log.Error("token subject is not a user id", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := WithIdentity(r.Context(), userID, claims.IsAdmin)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// WithIdentity returns a context carrying the caller's id and admin
// flag.
func WithIdentity(ctx context.Context, userID int, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, isAdminKey, isAdmin)
}

// UserID returns the authenticated caller's id, or false when the
// request did not pass through the middleware.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// IsAdmin reports whether the authenticated caller has the admin flag.
func IsAdmin(ctx context.Context) bool {
	isAdmin, _ := ctx.Value(isAdminKey).(bool)
	return isAdmin
}
