package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/expotrade/client-portal/internal/api/middleware"
	"github.com/expotrade/client-portal/internal/core/domain"
)

// currentUser returns the account the Auth middleware resolved. Its absence
// means the route was registered without the middleware; fail closed.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// bindAndValidate decodes the request body into req and runs struct
// validation. Decoding failures are 400s; validation failures carry
// domain.ErrValidation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}
