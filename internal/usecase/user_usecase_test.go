package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/validation"
)

// fakeUserRepo is an in-memory stand-in recording what the use case asked
// of it.
type fakeUserRepo struct {
	users          []entity.User
	inserted       *entity.User
	updatedID      primitive.ObjectID
	updatedUser    *entity.User
	deletedID      primitive.ObjectID
	countExcludeID primitive.ObjectID
	countErr       error
}

func (f *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) ([]entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return []entity.User{u}, nil
		}
	}
	return []entity.User{}, nil
}

func (f *fakeUserRepo) SearchByName(ctx context.Context, filter string) ([]entity.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, errors.New("mongo: no documents in result")
}

func (f *fakeUserRepo) CountByEmail(ctx context.Context, email string, excludeID primitive.ObjectID) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	f.countExcludeID = excludeID
	var count int64
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.ID = primitive.NewObjectID()
	f.inserted = user
	f.users = append(f.users, *user)
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, user *entity.User) (repository.UpdateResult, error) {
	f.updatedID = id
	f.updatedUser = user
	return repository.UpdateResult{Matched: 1, Modified: 1}, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	f.deletedID = id
	return repository.DeleteResult{Deleted: 1}, nil
}

func boolPtr(b bool) *bool { return &b }

func validUserInput() UserInput {
	return UserInput{
		Name:   "Maria da Silva",
		Email:  "maria@example.com",
		Senha:  "Segura@123",
		Active: boolPtr(true),
	}
}

func TestUserCreateHashesPasswordAndFillsDefaults(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, validation.New())

	created, err := uc.Create(context.Background(), validUserInput())
	require.NoError(t, err)

	assert.NotEqual(t, "Segura@123", created.Senha, "password must never be stored in clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Senha), []byte("Segura@123")))
	assert.Equal(t, entity.RoleClient, created.Role)
	assert.Equal(t, "https://ui-avatars.com/api/?background=3700B3&color=FFFFFF&name=Maria+da+Silva", created.Avatar)
}

func TestUserCreateKeepsSubmittedRole(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, validation.New())

	input := validUserInput()
	input.Role = entity.RoleAdmin

	created, err := uc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, created.Role)
}

func TestUserCreateAccumulatesViolations(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, validation.New())

	_, err := uc.Create(context.Background(), UserInput{
		Name:  "ab",
		Email: "nao-e-email",
		Senha: "123",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
	assert.GreaterOrEqual(t, len(appErr.Violations), 4)
	assert.Nil(t, repo.inserted, "nothing may be persisted when validation fails")
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: []entity.User{{
		ID:    primitive.NewObjectID(),
		Email: "maria@example.com",
	}}}
	uc := NewUserUseCase(repo, validation.New())

	_, err := uc.Create(context.Background(), validUserInput())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
	require.Len(t, appErr.Violations, 1)
	assert.Equal(t, "email", appErr.Violations[0].Param)
	assert.Contains(t, appErr.Violations[0].Msg, "já está informado em outro usuário")
}

func TestUserUpdateExcludesOwnRecordFromUniqueness(t *testing.T) {
	id := primitive.NewObjectID()
	repo := &fakeUserRepo{users: []entity.User{{
		ID:    id,
		Email: "maria@example.com",
	}}}
	uc := NewUserUseCase(repo, validation.New())

	result, err := uc.Update(context.Background(), id.Hex(), validUserInput())
	require.NoError(t, err)

	assert.Equal(t, id, repo.countExcludeID)
	assert.Equal(t, int64(1), result.Matched)
}

func TestUserUpdateRejectsMalformedID(t *testing.T) {
	uc := NewUserUseCase(&fakeUserRepo{}, validation.New())

	_, err := uc.Update(context.Background(), "nao-e-um-id", validUserInput())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "INVALID_ID", appErr.Code)
}

func TestUserGetByIDReturnsEmptySliceForUnknownID(t *testing.T) {
	uc := NewUserUseCase(&fakeUserRepo{}, validation.New())

	users, err := uc.GetByID(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserDeleteParsesID(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo, validation.New())

	id := primitive.NewObjectID()
	result, err := uc.Delete(context.Background(), id.Hex())
	require.NoError(t, err)

	assert.Equal(t, id, repo.deletedID)
	assert.Equal(t, int64(1), result.Deleted)
}
