package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
)

type ProfessionalRepository interface {
	List(ctx context.Context) ([]entity.Professional, error)
	FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Professional, error)
	SearchByName(ctx context.Context, name string) ([]entity.Professional, error)
	Insert(ctx context.Context, professional *entity.Professional) (*entity.Professional, error)
	Update(ctx context.Context, id primitive.ObjectID, professional *entity.Professional) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
	FindNearby(ctx context.Context, lat, lng float64) ([]bson.M, error)
}
