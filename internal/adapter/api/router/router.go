package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

// Setup wires the default route, static assets and the catch-all.
func Setup(e *echo.Echo, staticDir string) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"mensagem": "API 100% funcional!",
			"versao":   "1.0.1",
		})
	})

	e.Static("/public", staticDir)

	echo.NotFoundHandler = func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, response.ErrorBody{
			Errors: []apperrors.FieldError{{
				Value: c.Request().URL.Path,
				Msg:   "A rota informada não existe",
				Param: "/",
			}},
		})
	}
}
