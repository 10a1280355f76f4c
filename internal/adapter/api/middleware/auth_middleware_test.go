package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalker/internal/infrastructure/auth"
	"dogwalker/pkg/response"
)

func invokeAuth(t *testing.T, m *AuthMiddleware, headers map[string]string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, nextCalled
}

func TestAuthenticateMissingToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTManager("segredo-de-teste", 60))

	rec, nextCalled := invokeAuth(t, m, nil)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "É obrigatório o envio do token", body.Errors[0].Msg)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(auth.NewJWTManager("segredo-de-teste", 60))

	rec, nextCalled := invokeAuth(t, m, map[string]string{"access-token": "nem.um.token"})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Contains(t, body.Errors[0].Msg, "Token inválido")
}

func TestAuthenticateValidTokenOnEitherHeader(t *testing.T) {
	jwtManager := auth.NewJWTManager("segredo-de-teste", 60)
	m := NewAuthMiddleware(jwtManager)

	token, err := jwtManager.Sign(auth.TokenUser{ID: "1", Name: "Maria", Role: "Admin"})
	require.NoError(t, err)

	for _, header := range []string{"access-token", "x-access-token"} {
		rec, nextCalled := invokeAuth(t, m, map[string]string{header: token})
		assert.True(t, nextCalled, "header %s", header)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCurrentUserAfterAuthentication(t *testing.T) {
	jwtManager := auth.NewJWTManager("segredo-de-teste", 60)
	m := NewAuthMiddleware(jwtManager)

	token, err := jwtManager.Sign(auth.TokenUser{ID: "1", Name: "Maria", Role: "Admin"})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/usuarios", nil)
	req.Header.Set("access-token", token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		user := CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "Maria", user.Name)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCurrentUserOnUnprotectedRoute(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, CurrentUser(c))
}
