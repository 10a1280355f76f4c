package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
)

func SetupProfessionalRouter(e *echo.Echo, professionalHandler *handler.ProfessionalHandler) {
	professionals := e.Group("/profissionais")

	professionals.GET("/", professionalHandler.List)
	professionals.GET("/proximos", professionalHandler.Nearby)
	professionals.GET("/:id", professionalHandler.GetByID)
	professionals.GET("/nome/:nome", professionalHandler.SearchByName)
	professionals.POST("/", professionalHandler.Create)
	professionals.PUT("/", professionalHandler.Update)
	professionals.DELETE("/:id", professionalHandler.Delete)
}
