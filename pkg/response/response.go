package response

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/validation"
)

// ErrorBody is the single error envelope every route answers with. The
// violation records use the same {value, msg, param} triple the validation
// layer produces, so handler failures and field failures look alike.
type ErrorBody struct {
	Errors []apperrors.FieldError `json:"errors"`
}

// UpdateAck mirrors the storage engine's update acknowledgment. It reports
// counts, not the post-update document.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteAck reports the outcome of a delete. A zero DeletedCount is still a
// success: deleting a missing id is not an error.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// Accepted answers 202 with a write acknowledgment.
func Accepted(c echo.Context, ack interface{}) error {
	return c.JSON(http.StatusAccepted, ack)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, ErrorBody{Errors: validation.Violations(validationErr)})
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if len(appErr.Violations) > 0 {
			return c.JSON(appErr.Status, ErrorBody{Errors: appErr.Violations})
		}
		value := ""
		if appErr.Err != nil {
			value = appErr.Err.Error()
		}
		return c.JSON(appErr.Status, ErrorBody{Errors: []apperrors.FieldError{
			{Value: value, Msg: appErr.Message, Param: "/"},
		}})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{Errors: []apperrors.FieldError{
		{Value: err.Error(), Msg: "Erro inesperado ao processar a requisição", Param: "/"},
	}})
}
