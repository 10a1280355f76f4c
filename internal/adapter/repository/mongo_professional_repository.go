package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
)

type mongoProfessionalRepository struct {
	collection *mongo.Collection
}

func NewMongoProfessionalRepository(db *mongo.Database) repository.ProfessionalRepository {
	return &mongoProfessionalRepository{collection: db.Collection("profissionais")}
}

func (r *mongoProfessionalRepository) List(ctx context.Context) ([]entity.Professional, error) {
	opts := options.Find().SetSort(bson.M{"nome": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	professionals := []entity.Professional{}
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *mongoProfessionalRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Professional, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	professionals := []entity.Professional{}
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *mongoProfessionalRepository) SearchByName(ctx context.Context, name string) ([]entity.Professional, error) {
	query := bson.M{"nome": primitive.Regex{Pattern: name, Options: "i"}}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	professionals := []entity.Professional{}
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *mongoProfessionalRepository) Insert(ctx context.Context, professional *entity.Professional) (*entity.Professional, error) {
	result, err := r.collection.InsertOne(ctx, professional)
	if err != nil {
		return nil, err
	}
	professional.ID = result.InsertedID.(primitive.ObjectID)
	return professional, nil
}

func (r *mongoProfessionalRepository) Update(ctx context.Context, id primitive.ObjectID, professional *entity.Professional) (repository.UpdateResult, error) {
	professional.ID = primitive.NilObjectID
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": professional})
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *mongoProfessionalRepository) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{Deleted: result.DeletedCount}, nil
}

func (r *mongoProfessionalRepository) FindNearby(ctx context.Context, lat, lng float64) ([]bson.M, error) {
	pipeline := proximityPipeline(lat, lng, "profissional_id")
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
