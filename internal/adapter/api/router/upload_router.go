package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
)

func SetupUploadRouter(e *echo.Echo, uploadHandler *handler.UploadHandler) {
	e.POST("/upload/", uploadHandler.Upload)
	e.POST("/upload", uploadHandler.Upload)
}
