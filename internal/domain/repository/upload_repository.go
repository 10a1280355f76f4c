package repository

import (
	"context"

	"dogwalker/internal/domain/entity"
)

type UploadRepository interface {
	Insert(ctx context.Context, record *entity.UploadRecord) (*entity.UploadRecord, error)
}
