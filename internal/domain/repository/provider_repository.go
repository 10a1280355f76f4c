package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
)

type ProviderRepository interface {
	// List returns providers sorted by razao_social.
	List(ctx context.Context) ([]entity.Provider, error)
	FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Provider, error)
	// SearchByLegalName matches razao_social, case-insensitive substring.
	SearchByLegalName(ctx context.Context, legalName string) ([]entity.Provider, error)
	// CountByCNPJ counts providers holding the cnpj, excluding excludeID
	// when it is non-zero.
	CountByCNPJ(ctx context.Context, cnpj string, excludeID primitive.ObjectID) (int64, error)
	Insert(ctx context.Context, provider *entity.Provider) (*entity.Provider, error)
	Update(ctx context.Context, id primitive.ObjectID, provider *entity.Provider) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}
