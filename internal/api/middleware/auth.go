package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/expotrade/client-portal/internal/core/domain"
	"github.com/expotrade/client-portal/internal/core/ports"
)

const userContextKey = "user"

// Auth resolves the bearer token to an active user and stores it in the
// request context. Every failure is reported as domain.ErrUnauthenticated or
// one of its kinds; the error handler turns them into 401.
func Auth(authenticator ports.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			user, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Auth.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok && user != nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.Join(domain.ErrUnauthenticated, errors.New("missing authorization header"))
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", errors.Join(domain.ErrUnauthenticated, errors.New("invalid authorization header"))
	}
	return strings.TrimSpace(token), nil
}
