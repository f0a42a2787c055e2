package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/api/metrics"
	redisstore "github.com/snapshot/storefront/internal/infrastructure/db/redis"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (redisstore.Decision, error)
}

// RateLimit throttles requests per client IP. When the limiter errors the
// request is let through.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := c.RealIP()

			d, err := limiter.Allow(c.Request().Context(), clientID)
			if err != nil {
				log.Error().Err(err).Str("client_id", clientID).Msg("rate limit check failed")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				log.Warn().
					Str("client_id", clientID).
					Int("limit", d.Limit).
					Msg("rate limit exceeded")

				h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(d.ResetIn).Unix(), 10))
				h.Set("Retry-After", strconv.Itoa(int(d.ResetIn.Seconds())))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
