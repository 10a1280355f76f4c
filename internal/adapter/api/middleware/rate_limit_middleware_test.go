package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRateLimitThrottlesAfterBurst(t *testing.T) {
	m := NewLoginRateLimit()
	e := echo.New()

	handler := m.Limit(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	invoke := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/usuarios/login", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, invoke("10.0.0.1"), "attempt %d within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, invoke("10.0.0.1"))

	// A different client is unaffected.
	assert.Equal(t, http.StatusOK, invoke("10.0.0.2"))
}
