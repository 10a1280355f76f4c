package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
)

// SetupProviderRouter wires the prestadores resource. The update route has
// no :id segment: the document id travels in the body.
func SetupProviderRouter(e *echo.Echo, providerHandler *handler.ProviderHandler) {
	providers := e.Group("/prestadores")

	providers.GET("/", providerHandler.List)
	providers.GET("/id/:id", providerHandler.GetByID)
	providers.GET("/razao/:razao", providerHandler.SearchByLegalName)
	providers.POST("/", providerHandler.Create)
	providers.PUT("/", providerHandler.Update)
	providers.DELETE("/:id", providerHandler.Delete)
}
