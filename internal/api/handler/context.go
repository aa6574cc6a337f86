package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumatch/candidate-search/internal/api/middleware"
	"github.com/resumatch/candidate-search/internal/core/domain"
)

// ctxSession returns the caller's session and fails fast with 401 when the
// request is anonymous. Guarded routes never reach this with an empty session;
// the check covers routes mounted without a guard.
func ctxSession(c echo.Context) (domain.Session, error) {
	s := middleware.SessionFrom(c)
	if !s.Authenticated() {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return s, nil
}

// bindAndValidate decodes the request body into req and runs the struct
// validator. Validation failures surface as domain.ErrValidation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}
