package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCoordinate(t *testing.T) {
	e := echo.New()

	newCtx := func(target string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	value := queryCoordinate(newCtx("/passeadores/proximos?lat=-23.26428"), "lat")
	require.NotNil(t, value)
	assert.Equal(t, -23.26428, *value)

	assert.Nil(t, queryCoordinate(newCtx("/passeadores/proximos"), "lat"))
	assert.Nil(t, queryCoordinate(newCtx("/passeadores/proximos?lat=abc"), "lat"))
}
