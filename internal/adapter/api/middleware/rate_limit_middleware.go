package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"dogwalker/internal/infrastructure/ratelimit"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

// RateLimitMiddleware throttles credential attempts per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

// NewLoginRateLimit allows a short burst of attempts, refilling one per
// minute.
func NewLoginRateLimit() *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limiter: ratelimit.NewLimiter(5, 1, time.Minute),
	}
	go m.cleanupLoop()
	return m
}

func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if ok, _ := m.limiter.Allow(c.RealIP()); !ok {
			return response.Error(c, apperrors.TooManyRequests(
				"Muitas tentativas de login. Aguarde antes de tentar novamente"))
		}
		return next(c)
	}
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		m.limiter.Cleanup()
	}
}
