package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

type ProfessionalHandler struct {
	professionalUseCase *usecase.ProfessionalUseCase
}

func NewProfessionalHandler(professionalUseCase *usecase.ProfessionalUseCase) *ProfessionalHandler {
	return &ProfessionalHandler{professionalUseCase: professionalUseCase}
}

func (h *ProfessionalHandler) List(c echo.Context) error {
	professionals, err := h.professionalUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, professionals)
}

func (h *ProfessionalHandler) GetByID(c echo.Context) error {
	professionals, err := h.professionalUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, professionals)
}

func (h *ProfessionalHandler) SearchByName(c echo.Context) error {
	professionals, err := h.professionalUseCase.SearchByName(c.Request().Context(), c.Param("nome"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, professionals)
}

func (h *ProfessionalHandler) Nearby(c echo.Context) error {
	results, err := h.professionalUseCase.Nearby(
		c.Request().Context(),
		queryCoordinate(c, "lat"),
		queryCoordinate(c, "lng"),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, results)
}

func (h *ProfessionalHandler) Create(c echo.Context) error {
	var input usecase.ProfessionalInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	professional, err := h.professionalUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, professional)
}

// Update reads the document id from the body's _id field.
func (h *ProfessionalHandler) Update(c echo.Context) error {
	var input usecase.ProfessionalInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	result, err := h.professionalUseCase.Update(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.Matched,
		ModifiedCount: result.Modified,
	})
}

func (h *ProfessionalHandler) Delete(c echo.Context) error {
	result, err := h.professionalUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.Deleted,
	})
}
