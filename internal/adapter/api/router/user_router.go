package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
	"dogwalker/internal/adapter/api/middleware"
)

// SetupUserRouter wires the usuarios resource. CRUD requires a token; the
// login and token-refresh endpoints are public, with login throttled.
func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, authHandler *handler.AuthHandler,
	authMiddleware *middleware.AuthMiddleware, loginRateLimit *middleware.RateLimitMiddleware) {

	users := e.Group("/usuarios")

	users.POST("/login", authHandler.Login, loginRateLimit.Limit)
	users.POST("/token", authHandler.Refresh)

	users.GET("/", userHandler.List, authMiddleware.Authenticate)
	users.GET("/:id", userHandler.GetByID, authMiddleware.Authenticate)
	users.GET("/nome/:filtro", userHandler.SearchByName, authMiddleware.Authenticate)
	users.POST("/", userHandler.Create, authMiddleware.Authenticate)
	users.PUT("/:id", userHandler.Update, authMiddleware.Authenticate)
	users.DELETE("/:id", userHandler.Delete, authMiddleware.Authenticate)
}
