package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/api/metrics"
	"github.com/resumatch/candidate-search/internal/core/access"
)

type deniedResponse struct {
	Error      string `json:"error"`
	RedirectTo string `json:"redirect_to"`
}

// Guard enforces the requirement the gate declares for route. It expects
// Session to have run. Unauthenticated callers get 401, everyone else who is
// turned away gets 403; both carry the path the client should navigate to.
func Guard(gate *access.Gate, route string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := SessionFrom(c)
			decision := gate.AuthorizePath(session, route)
			metrics.RecordAccess(route, decision.Allow)

			if decision.Allow {
				return next(c)
			}

			if !session.Authenticated() {
				return c.JSON(http.StatusUnauthorized, deniedResponse{
					Error:      "authentication required",
					RedirectTo: decision.RedirectTo,
				})
			}
			return c.JSON(http.StatusForbidden, deniedResponse{
				Error:      "forbidden",
				RedirectTo: decision.RedirectTo,
			})
		}
	}
}
