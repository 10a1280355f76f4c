package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
)

// proximityRadiusMeters bounds the geospatial search to 20 km around the
// requested point.
const proximityRadiusMeters = 20000

type mongoWalkerRepository struct {
	collection *mongo.Collection
}

func NewMongoWalkerRepository(db *mongo.Database) repository.WalkerRepository {
	return &mongoWalkerRepository{collection: db.Collection("passeadores")}
}

func (r *mongoWalkerRepository) List(ctx context.Context) ([]entity.Walker, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	walkers := []entity.Walker{}
	if err := cursor.All(ctx, &walkers); err != nil {
		return nil, err
	}
	return walkers, nil
}

func (r *mongoWalkerRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Walker, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	walkers := []entity.Walker{}
	if err := cursor.All(ctx, &walkers); err != nil {
		return nil, err
	}
	return walkers, nil
}

func (r *mongoWalkerRepository) SearchByName(ctx context.Context, name string) ([]entity.Walker, error) {
	query := bson.M{"nome": primitive.Regex{Pattern: name, Options: "i"}}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	walkers := []entity.Walker{}
	if err := cursor.All(ctx, &walkers); err != nil {
		return nil, err
	}
	return walkers, nil
}

func (r *mongoWalkerRepository) Insert(ctx context.Context, walker *entity.Walker) (*entity.Walker, error) {
	result, err := r.collection.InsertOne(ctx, walker)
	if err != nil {
		return nil, err
	}
	walker.ID = result.InsertedID.(primitive.ObjectID)
	return walker, nil
}

func (r *mongoWalkerRepository) Update(ctx context.Context, id primitive.ObjectID, walker *entity.Walker) (repository.UpdateResult, error) {
	walker.ID = primitive.NilObjectID
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": walker})
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *mongoWalkerRepository) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{Deleted: result.DeletedCount}, nil
}

// FindNearby delegates distance, grouping and ordering to the engine's
// geospatial aggregation. Distances come back in km (distanceMultiplier).
// Coordinates stay in the [lat, lng] order the documents are stored with.
func (r *mongoWalkerRepository) FindNearby(ctx context.Context, lat, lng float64) ([]bson.M, error) {
	pipeline := proximityPipeline(lat, lng, "passeador_id")
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

// proximityPipeline is shared by the passeadores and profissionais
// collections; foreignField selects which detail join key to use.
func proximityPipeline(lat, lng float64, foreignField string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{lat, lng},
			},
			"distanceField":      "distancia",
			"maxDistance":        proximityRadiusMeters,
			"distanceMultiplier": 0.001,
			"spherical":          true,
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$depoimentos",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$_id",
			"nome":      bson.M{"$first": "$nome"},
			"distancia": bson.M{"$first": "$distancia"},
			"media":     bson.M{"$avg": "$depoimentos.estrelas"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "detalhes",
			"localField":   "_id",
			"foreignField": foreignField,
			"as":           "detalhes",
		}}},
		{{Key: "$sort", Value: bson.M{"media": -1}}},
	}
}
