package usecase

import (
	"context"
	"mime/multipart"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
	"dogwalker/internal/infrastructure/storage"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/logger"
)

type UploadUseCase struct {
	store      *storage.LocalStorage
	uploadRepo repository.UploadRepository
}

func NewUploadUseCase(store *storage.LocalStorage, uploadRepo repository.UploadRepository) *UploadUseCase {
	return &UploadUseCase{
		store:      store,
		uploadRepo: uploadRepo,
	}
}

// Store validates every part's extension before any disk write, then saves
// the files and records their metadata. One disallowed part rejects the
// whole batch.
func (uc *UploadUseCase) Store(ctx context.Context, fieldName string, files []*multipart.FileHeader) ([]entity.UploadRecord, error) {
	for _, file := range files {
		if !storage.Allowed(file.Filename) {
			return nil, apperrors.BadRequest(
				"A extensão do arquivo "+file.Filename+" não é permitida. Envie apenas imagens", nil)
		}
	}

	records := make([]entity.UploadRecord, 0, len(files))
	for _, file := range files {
		stored, err := uc.store.Save(fieldName, file)
		if err != nil {
			return nil, apperrors.Internal("Erro ao gravar o arquivo "+file.Filename, err)
		}

		record := entity.UploadRecord{
			Filename:     stored.Filename,
			MimeType:     stored.MimeType,
			OriginalName: stored.OriginalName,
			Size:         stored.Size,
			FieldName:    stored.FieldName,
		}
		saved, err := uc.uploadRepo.Insert(ctx, &record)
		if err != nil {
			// The file is on disk; losing its metadata record is not fatal.
			logger.Warn("falha ao registrar metadados do upload %s: %v", stored.Filename, err)
			records = append(records, record)
			continue
		}
		records = append(records, *saved)
	}

	return records, nil
}
