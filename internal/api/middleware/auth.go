package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// Context keys set by Session.
const (
	SessionKey   = "session"
	SessionIDKey = "session_id"
)

// SessionLoader restores a session by id.
type SessionLoader interface {
	Load(ctx context.Context, sessionID string) (domain.Session, error)
}

// Session resolves the caller's session and injects it into the context.
// Requests without an Authorization header carry the empty session; a header
// that is present but malformed or carries a bad token is rejected with 401.
// The token only names the session; its state is always read from the store so
// a logout takes effect immediately.
func Session(jwtSecret string, loader SessionLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				c.Set(SessionKey, domain.Session{})
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
			}

			session, err := loader.Load(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			c.Set(SessionIDKey, sid)
			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

// SessionFrom returns the session injected by Session, or the empty session.
func SessionFrom(c echo.Context) domain.Session {
	s, _ := c.Get(SessionKey).(domain.Session)
	return s
}

// SessionIDFrom returns the id of the caller's session, if any.
func SessionIDFrom(c echo.Context) string {
	sid, _ := c.Get(SessionIDKey).(string)
	return sid
}
