package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

const refreshCookieName = "refreshToken"

// refreshCookieMaxAge is fixed at 24 h regardless of the signed token's own
// expiry claim. The two windows have always been set independently.
const refreshCookieMaxAge = 24 * time.Hour

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Senha)
	if err != nil {
		return response.Error(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    result.AccessToken,
		Expires:  time.Now().Add(refreshCookieMaxAge),
		HttpOnly: true,
		Path:     "/",
	})

	return response.Success(c, map[string]string{"access_token": result.AccessToken})
}

// Refresh verifies the cookie-borne token and reissues a fresh access
// token alongside the decoded identity.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return response.Error(c, apperrors.Unauthorized("É obrigatório o envio do token", err))
	}

	result, err := h.authUseCase.Refresh(cookie.Value)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
