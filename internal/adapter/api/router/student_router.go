package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
)

func SetupStudentRouter(e *echo.Echo, studentHandler *handler.StudentHandler) {
	students := e.Group("/estudantes")

	students.GET("/", studentHandler.List)
	students.GET("/:id", studentHandler.GetByID)
	students.GET("/nome/:nome", studentHandler.SearchByName)
	students.POST("/", studentHandler.Create)
	students.PUT("/:id", studentHandler.Update)
	students.DELETE("/:id", studentHandler.Delete)
}
