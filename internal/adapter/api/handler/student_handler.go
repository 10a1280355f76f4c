package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

type StudentHandler struct {
	studentUseCase *usecase.StudentUseCase
}

func NewStudentHandler(studentUseCase *usecase.StudentUseCase) *StudentHandler {
	return &StudentHandler{studentUseCase: studentUseCase}
}

func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.studentUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, students)
}

func (h *StudentHandler) GetByID(c echo.Context) error {
	students, err := h.studentUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, students)
}

func (h *StudentHandler) SearchByName(c echo.Context) error {
	students, err := h.studentUseCase.SearchByName(c.Request().Context(), c.Param("nome"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, students)
}

func (h *StudentHandler) Create(c echo.Context) error {
	var input usecase.StudentInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	student, err := h.studentUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, student)
}

func (h *StudentHandler) Update(c echo.Context) error {
	var input usecase.StudentInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	result, err := h.studentUseCase.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.Matched,
		ModifiedCount: result.Modified,
	})
}

func (h *StudentHandler) Delete(c echo.Context) error {
	result, err := h.studentUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.Deleted,
	})
}
