package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
)

type UserRepository interface {
	// List returns every user with the password hash excluded by projection.
	List(ctx context.Context) ([]entity.User, error)
	// FindByID returns a slice with zero or one element; an unmatched id is
	// an empty result, never an error.
	FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.User, error)
	// SearchByName matches nome or email, case-insensitive substring.
	SearchByName(ctx context.Context, filter string) ([]entity.User, error)
	// FindByEmail returns the full document including the password hash.
	// Used by the login flow only.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// CountByEmail counts users holding the email, excluding excludeID when
	// it is non-zero (the record being updated).
	CountByEmail(ctx context.Context, email string, excludeID primitive.ObjectID) (int64, error)
	Insert(ctx context.Context, user *entity.User) (*entity.User, error)
	Update(ctx context.Context, id primitive.ObjectID, user *entity.User) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
}
