package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

type ProviderHandler struct {
	providerUseCase *usecase.ProviderUseCase
}

func NewProviderHandler(providerUseCase *usecase.ProviderUseCase) *ProviderHandler {
	return &ProviderHandler{providerUseCase: providerUseCase}
}

func (h *ProviderHandler) List(c echo.Context) error {
	providers, err := h.providerUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, providers)
}

func (h *ProviderHandler) GetByID(c echo.Context) error {
	providers, err := h.providerUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, providers)
}

func (h *ProviderHandler) SearchByLegalName(c echo.Context) error {
	providers, err := h.providerUseCase.SearchByLegalName(c.Request().Context(), c.Param("razao"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, providers)
}

func (h *ProviderHandler) Create(c echo.Context) error {
	var input usecase.ProviderInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	provider, err := h.providerUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, provider)
}

// Update reads the document id from the body's _id field.
func (h *ProviderHandler) Update(c echo.Context) error {
	var input usecase.ProviderInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	result, err := h.providerUseCase.Update(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.Matched,
		ModifiedCount: result.Modified,
	})
}

func (h *ProviderHandler) Delete(c echo.Context) error {
	result, err := h.providerUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.Deleted,
	})
}
