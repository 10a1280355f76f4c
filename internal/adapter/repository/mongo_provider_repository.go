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

type mongoProviderRepository struct {
	collection *mongo.Collection
}

func NewMongoProviderRepository(db *mongo.Database) repository.ProviderRepository {
	return &mongoProviderRepository{collection: db.Collection("prestadores")}
}

func (r *mongoProviderRepository) List(ctx context.Context) ([]entity.Provider, error) {
	opts := options.Find().SetSort(bson.M{"razao_social": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	providers := []entity.Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *mongoProviderRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Provider, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	providers := []entity.Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *mongoProviderRepository) SearchByLegalName(ctx context.Context, legalName string) ([]entity.Provider, error) {
	query := bson.M{"razao_social": primitive.Regex{Pattern: legalName, Options: "i"}}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	providers := []entity.Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *mongoProviderRepository) CountByCNPJ(ctx context.Context, cnpj string, excludeID primitive.ObjectID) (int64, error) {
	query := bson.M{"cnpj": cnpj}
	if !excludeID.IsZero() {
		query["_id"] = bson.M{"$ne": excludeID}
	}
	return r.collection.CountDocuments(ctx, query)
}

func (r *mongoProviderRepository) Insert(ctx context.Context, provider *entity.Provider) (*entity.Provider, error) {
	result, err := r.collection.InsertOne(ctx, provider)
	if err != nil {
		return nil, err
	}
	provider.ID = result.InsertedID.(primitive.ObjectID)
	return provider, nil
}

func (r *mongoProviderRepository) Update(ctx context.Context, id primitive.ObjectID, provider *entity.Provider) (repository.UpdateResult, error) {
	provider.ID = primitive.NilObjectID
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": provider})
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *mongoProviderRepository) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{Deleted: result.DeletedCount}, nil
}
