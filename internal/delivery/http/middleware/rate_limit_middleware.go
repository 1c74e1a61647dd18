package middleware

import (
	"vaxtrack/config"
	"vaxtrack/internal/delivery/http/response"
	domainerrors "vaxtrack/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewAuthRateLimiter builds the per-IP rate limiter applied to credential
// endpoints. Disabled or degenerate config yields a pass-through middleware;
// config loading already rejects an enabled limiter with a non-positive
// window, so the guard here only matters for hand-built configs.
func NewAuthRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	rl := cfg.HTTP.RateLimit
	if rl == nil || !rl.Enabled || rl.Threshold <= 0 || rl.Window <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	window := rl.Window

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(rl.Threshold) / window.Seconds()),
			Burst:     rl.Threshold,
			ExpiresIn: window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c,
				domainerrors.ErrRateLimited.HTTPCode(),
				domainerrors.ErrRateLimited.ErrorCode(),
				domainerrors.ErrRateLimited.Message(),
				"",
			)
		},
	})
}
