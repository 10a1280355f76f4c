package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
)

type mongoStudentRepository struct {
	collection *mongo.Collection
}

func NewMongoStudentRepository(db *mongo.Database) repository.StudentRepository {
	return &mongoStudentRepository{collection: db.Collection("estudantes")}
}

func (r *mongoStudentRepository) List(ctx context.Context) ([]entity.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []entity.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *mongoStudentRepository) FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.Student, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []entity.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *mongoStudentRepository) SearchByName(ctx context.Context, name string) ([]entity.Student, error) {
	query := bson.M{"nome": primitive.Regex{Pattern: name, Options: "i"}}
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	students := []entity.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *mongoStudentRepository) Insert(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	result, err := r.collection.InsertOne(ctx, student)
	if err != nil {
		return nil, err
	}
	student.ID = result.InsertedID.(primitive.ObjectID)
	return student, nil
}

func (r *mongoStudentRepository) Update(ctx context.Context, id primitive.ObjectID, student *entity.Student) (repository.UpdateResult, error) {
	student.ID = primitive.NilObjectID
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": student})
	if err != nil {
		return repository.UpdateResult{}, err
	}
	return repository.UpdateResult{Matched: result.MatchedCount, Modified: result.ModifiedCount}, nil
}

func (r *mongoStudentRepository) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, err
	}
	return repository.DeleteResult{Deleted: result.DeletedCount}, nil
}
