package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/infrastructure/geocode"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

// GeoHandler proxies geocoding and company lookups to third-party APIs,
// relaying their JSON responses. Upstream failures become structured error
// objects, never a crashed request.
type GeoHandler struct {
	geocodeClient *geocode.Client
}

func NewGeoHandler(geocodeClient *geocode.Client) *GeoHandler {
	return &GeoHandler{geocodeClient: geocodeClient}
}

func (h *GeoHandler) ReverseGeocode(c echo.Context) error {
	result, err := h.geocodeClient.ReverseGeocode(
		c.Request().Context(), c.QueryParam("lat"), c.QueryParam("lng"))
	if err != nil {
		return response.Error(c, apperrors.Upstream("Erro ao obter o endereço na API MapQuest", err))
	}
	return response.Success(c, result)
}

func (h *GeoHandler) ForwardGeocode(c echo.Context) error {
	result, err := h.geocodeClient.ForwardGeocode(
		c.Request().Context(), c.QueryParam("localizacao"))
	if err != nil {
		return response.Error(c, apperrors.Upstream("Erro ao obter a latitude e longitude na API MapQuest", err))
	}
	return response.Success(c, result)
}

func (h *GeoHandler) CompanyLookup(c echo.Context) error {
	result, err := h.geocodeClient.CompanyLookup(
		c.Request().Context(), c.QueryParam("cnpj"))
	if err != nil {
		return response.Error(c, apperrors.Upstream("Erro ao obter os dados da empresa na API BrasilAPI", err))
	}
	return response.Success(c, result)
}
