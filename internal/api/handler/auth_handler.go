package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/api/metrics"
	"github.com/resumatch/candidate-search/internal/api/middleware"
	"github.com/resumatch/candidate-search/internal/core/domain"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the account directory and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:    res.Token,
		User:     res.Session.Account,
		UserType: res.Session.UserType,
		Redirect: res.Landing,
	})
}

// Logout closes the caller's session. Anonymous callers get 204 as well.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context(), middleware.SessionIDFrom(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the caller's current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	s := middleware.SessionFrom(c)
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: s.Authenticated(),
		User:          s.Account,
		UserType:      s.UserType,
	})
}
