package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"itemkeeper/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid bearer token. Read-only item
// endpoints are registered without it.
type Auth struct {
	users user.Servicer
	log   *slog.Logger
}

func New(users user.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		users: users,
		log:   log.With("component", "auth_middleware"),
	}
}

type contextKey string

const userIDKey contextKey = "userID"

// Middleware returns a Huma middleware validating the Authorization header.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if !strings.HasPrefix(header, bearerPrefix) {
			a.log.Debug("missing or malformed authorization header")
			writeUnauthorized(ctx, "missing authorization header")
			return
		}

		userID, ok := a.users.ValidateToken(ctx.Context(), header[len(bearerPrefix):])
		if !ok {
			a.log.Debug("token rejected")
			writeUnauthorized(ctx, "invalid token")
			return
		}

		next(huma.WithContext(ctx, WithUserID(ctx.Context(), userID)))
	}
}

func writeUnauthorized(ctx huma.Context, msg string) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": msg,
	})
}

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID returns the authenticated user id, if any.
func GetUserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDKey).(int)
	return userID, ok
}
