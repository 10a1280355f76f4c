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

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{collection: db.Collection("usuarios")}
}

func (r *mongoUserRepository) List(ctx context.Context) ([]entity.User, error) {
	opts := options.Find().SetProjection(bson.M{"senha": 0})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.User, error) {
	opts := options.Find().SetProjection(bson.M{"senha": 0})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": id}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepository) SearchByName(ctx context.Context, filter string) ([]entity.User, error) {
	regex := primitive.Regex{Pattern: filter, Options: "i"}
	query := bson.M{"$or": bson.A{
		bson.M{"nome": regex},
		bson.M{"email": regex},
	}}
	opts := options.Find().SetProjection(bson.M{"senha": 0})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) CountByEmail(ctx context.Context, email string, excludeID primitive.ObjectID) (int64, error) {
	query := bson.M{"email": email}
	if !excludeID.IsZero() {
		query["_id"] = bson.M{"$ne": excludeID}
	}
	return r.collection.CountDocuments(ctx, query)
}

func (r *mongoUserRepository) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *mongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, user *entity.User) (repository.UpdateResult, error) {
	user.ID = primitive.NilObjectID // _id is immutable, keep it out of $set
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": user})
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{Deleted: result.DeletedCount}, nil
}
