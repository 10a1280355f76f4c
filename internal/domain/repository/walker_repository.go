package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
)

type WalkerRepository interface {
	List(ctx context.Context) ([]entity.Walker, error)
	FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Walker, error)
	SearchByName(ctx context.Context, name string) ([]entity.Walker, error)
	Insert(ctx context.Context, walker *entity.Walker) (*entity.Walker, error)
	Update(ctx context.Context, id primitive.ObjectID, walker *entity.Walker) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
	// FindNearby runs the geospatial pipeline centered on (lat, lng):
	// candidates within 20 km, testimonial ratings averaged, detail records
	// joined, sorted by average rating descending. The result shape is the
	// engine's aggregation output.
	FindNearby(ctx context.Context, lat, lng float64) ([]bson.M, error)
}
