package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
)

type StudentRepository interface {
	List(ctx context.Context) ([]entity.Student, error)
	FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Student, error)
	SearchByName(ctx context.Context, name string) ([]entity.Student, error)
	Insert(ctx context.Context, student *entity.Student) (*entity.Student, error)
	Update(ctx context.Context, id primitive.ObjectID, student *entity.Student) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}
