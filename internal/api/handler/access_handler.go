package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/api/metrics"
	"github.com/resumatch/candidate-search/internal/api/middleware"
	"github.com/resumatch/candidate-search/internal/core/access"
)

type AccessHandler struct {
	gate *access.Gate
}

func NewAccessHandler(gate *access.Gate) *AccessHandler {
	return &AccessHandler{gate: gate}
}

// Check evaluates the route guard for the caller's session against a client
// route, letting the front end decide where to navigate.
//
// @Summary      Check route access
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        path  query     string  true  "Client route, e.g. /search"
// @Success      200   {object}  accessResponse
// @Failure      400   {object}  map[string]string
// @Router       /v1/access [get]
func (h *AccessHandler) Check(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}

	decision := h.gate.AuthorizePath(middleware.SessionFrom(c), path)
	label := path
	if !access.IsKnownPath(path) {
		label = "other"
	}
	metrics.RecordAccess(label, decision.Allow)

	resp := accessResponse{
		Path:       path,
		Allow:      decision.Allow,
		RedirectTo: decision.RedirectTo,
	}
	if req, ok := h.gate.Requirement(path); ok {
		resp.Protected = true
		resp.RequiredRole = req.RequiredRole
		resp.RequiredUserType = req.RequiredUserType
	}
	return c.JSON(http.StatusOK, resp)
}
