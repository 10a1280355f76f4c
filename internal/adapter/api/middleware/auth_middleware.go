package middleware

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/infrastructure/auth"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

// ContextUserKey is where the authenticated identity lands on the echo
// context.
const ContextUserKey = "usuario"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Authenticate accepts the token under either of the two header names the
// API has always honored. A missing token is 401; a token that fails
// verification is 403 with the underlying reason.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get("access-token")
		if token == "" {
			token = c.Request().Header.Get("x-access-token")
		}
		if token == "" {
			return response.Error(c, apperrors.Unauthorized("É obrigatório o envio do token", nil))
		}

		user, err := m.jwtManager.Verify(token)
		if err != nil {
			return response.Error(c, apperrors.Forbidden("Token inválido: "+err.Error(), err))
		}

		c.Set(ContextUserKey, user)
		return next(c)
	}
}

// CurrentUser returns the identity Authenticate attached, or nil on an
// unprotected route.
func CurrentUser(c echo.Context) *auth.TokenUser {
	user, _ := c.Get(ContextUserKey).(*auth.TokenUser)
	return user
}
