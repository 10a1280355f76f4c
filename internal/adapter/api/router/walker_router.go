package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
)

func SetupWalkerRouter(e *echo.Echo, walkerHandler *handler.WalkerHandler) {
	walkers := e.Group("/passeadores")

	walkers.GET("/", walkerHandler.List)
	walkers.GET("/proximos", walkerHandler.Nearby)
	walkers.GET("/:id", walkerHandler.GetByID)
	walkers.GET("/nome/:nome", walkerHandler.SearchByName)
	walkers.POST("/", walkerHandler.Create)
	walkers.PUT("/:id", walkerHandler.Update)
	walkers.DELETE("/:id", walkerHandler.Delete)
}
