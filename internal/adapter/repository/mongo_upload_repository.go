package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
)

type mongoUploadRepository struct {
	collection *mongo.Collection
}

func NewMongoUploadRepository(db *mongo.Database) repository.UploadRepository {
	return &mongoUploadRepository{collection: db.Collection("uploads")}
}

func (r *mongoUploadRepository) Insert(ctx context.Context, record *entity.UploadRecord) (*entity.UploadRecord, error) {
	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = result.InsertedID.(primitive.ObjectID)
	return record, nil
}
