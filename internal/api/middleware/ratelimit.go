package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/expotrade/client-portal/internal/api/metrics"
	"github.com/expotrade/client-portal/internal/core/domain"
)

// Limiter decides whether a client may submit a form again.
type Limiter interface {
	Allow(ctx context.Context, form, client string) (bool, error)
}

// FormRateLimit throttles a public form per client IP. A nil limiter disables
// the check. Limiter errors let the request through.
func FormRateLimit(limiter Limiter, form string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), form, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("form", form).Msg("rate limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.FormRateLimitedTotal.WithLabelValues(form).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
