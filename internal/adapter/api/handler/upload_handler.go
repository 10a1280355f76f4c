package handler

import (
	"github.com/labstack/echo/v4"

	"dogwalker/internal/usecase"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/logger"
	"dogwalker/pkg/response"
)

const uploadFieldName = "file"

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
}

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase}
}

type uploadResponse struct {
	Upload bool        `json:"upload"`
	Files  interface{} `json:"files"`
}

// Upload accepts one or more image parts under the "file" field. Any
// disallowed extension rejects the batch before a single byte hits disk.
func (h *UploadHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, apperrors.BadRequest("Requisição multipart inválida", err))
	}

	files := form.File[uploadFieldName]
	logger.Debug("arquivos recebidos: %d", len(files))
	if len(files) == 0 {
		return response.Success(c, uploadResponse{Upload: false, Files: []interface{}{}})
	}

	records, err := h.uploadUseCase.Store(c.Request().Context(), uploadFieldName, files)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, uploadResponse{Upload: true, Files: records})
}
