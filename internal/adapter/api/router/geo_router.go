package router

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/adapter/api/handler"
)

func SetupGeoRouter(e *echo.Echo, geoHandler *handler.GeoHandler) {
	geo := e.Group("/api/geo")

	geo.GET("/geo-latlng", geoHandler.ReverseGeocode)
	geo.GET("/geo-endereco", geoHandler.ForwardGeocode)
	geo.GET("/empresa", geoHandler.CompanyLookup)
}
