package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/response"
)

type WalkerHandler struct {
	walkerUseCase *usecase.WalkerUseCase
}

func NewWalkerHandler(walkerUseCase *usecase.WalkerUseCase) *WalkerHandler {
	return &WalkerHandler{walkerUseCase: walkerUseCase}
}

func (h *WalkerHandler) List(c echo.Context) error {
	walkers, err := h.walkerUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, walkers)
}

func (h *WalkerHandler) GetByID(c echo.Context) error {
	walkers, err := h.walkerUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, walkers)
}

func (h *WalkerHandler) SearchByName(c echo.Context) error {
	walkers, err := h.walkerUseCase.SearchByName(c.Request().Context(), c.Param("nome"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, walkers)
}

// Nearby answers the proximity aggregation. Coordinates default to the
// fixed reference point when the query omits them.
func (h *WalkerHandler) Nearby(c echo.Context) error {
	results, err := h.walkerUseCase.Nearby(
		c.Request().Context(),
		queryCoordinate(c, "lat"),
		queryCoordinate(c, "lng"),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, results)
}

func (h *WalkerHandler) Create(c echo.Context) error {
	var input usecase.WalkerInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	walker, err := h.walkerUseCase.Create(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, walker)
}

func (h *WalkerHandler) Update(c echo.Context) error {
	var input usecase.WalkerInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, apperrors.BadRequest("Payload inválido", err))
	}

	result, err := h.walkerUseCase.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.Matched,
		ModifiedCount: result.Modified,
	})
}

func (h *WalkerHandler) Delete(c echo.Context) error {
	result, err := h.walkerUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Accepted(c, response.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.Deleted,
	})
}
