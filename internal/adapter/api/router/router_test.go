package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalker/pkg/response"
)

func TestRootRoute(t *testing.T) {
	e := echo.New()
	Setup(e, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API 100% funcional!", body["mensagem"])
	assert.Equal(t, "1.0.1", body["versao"])
}

func TestUnknownRouteAnswersStructuredNotFound(t *testing.T) {
	e := echo.New()
	Setup(e, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/rota-que-nao-existe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "A rota informada não existe", body.Errors[0].Msg)
	assert.Equal(t, "/rota-que-nao-existe", body.Errors[0].Value)
}
