package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/api/metrics"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// Public messages. The frontend matches on these exact strings, and every
// validation failure (malformed, expired, bad signature, vanished user)
// deliberately collapses into the same "invalid" message; the distinction
// survives only in logs and metrics.
const (
	msgTokenMissing = "Token faltante"
	msgTokenInvalid = "Token invalido"
)

// Auth is the access gate: it extracts the bearer token, validates it, and
// resolves the acting user before any protected handler runs. The router
// composes it on the whole /api group so no endpoint can skip it.
func Auth(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgTokenMissing})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgTokenMissing})
			}

			userID, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgTokenInvalid})
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("unknown_user").Inc()
				log.Debug().Err(err).Int64("user_id", userID).Msg("token subject no longer resolves")
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": msgTokenInvalid})
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUsername, user.Username)
			return next(c)
		}
	}
}
