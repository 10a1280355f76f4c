package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

// GetByID answers a zero-or-one element array; only a malformed id is an
// error.
func (h *UserHandler) GetByID(c echo.Context) error {
	users, err := h.userUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) SearchByName(c echo.Context) error {
	users, err := h.userUseCase.SearchByName(c.Request().Context(), c.Param("filtro"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.UserInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	user, err := h.userUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	var input usecase.UserInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	result, err := h.userUseCase.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.Matched,
		ModifiedCount: result.Modified,
	})
}

func (h *UserHandler) Delete(c echo.Context) error {
	result, err := h.userUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.Deleted,
	})
}
