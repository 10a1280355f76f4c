package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/infrastructure/auth"
	apperrors "dogwalker/pkg/errors"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, senha string) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	user := entity.User{
		ID:    primitive.NewObjectID(),
		Name:  "Maria da Silva",
		Email: email,
		Senha: string(hash),
		Role:  entity.RoleAdmin,
	}
	repo.users = append(repo.users, user)
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := &fakeUserRepo{}
	user := seedUser(t, repo, "maria@example.com", "Segura@123")
	jwtManager := auth.NewJWTManager("segredo-de-teste", 60)
	uc := NewAuthUseCase(repo, jwtManager)

	result, err := uc.Login(context.Background(), "maria@example.com", "Segura@123")
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), result.Usuario.ID)
	assert.Equal(t, user.Name, result.Usuario.Name)
	assert.Equal(t, entity.RoleAdmin, result.Usuario.Role)

	parsed, err := jwtManager.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), parsed.ID)
}

func TestLoginUnknownEmailAnswersNotFound(t *testing.T) {
	uc := NewAuthUseCase(&fakeUserRepo{}, auth.NewJWTManager("segredo-de-teste", 60))

	_, err := uc.Login(context.Background(), "ninguem@example.com", "Segura@123")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestLoginWrongPasswordAnswersForbiddenWithoutEchoingIt(t *testing.T) {
	repo := &fakeUserRepo{}
	seedUser(t, repo, "maria@example.com", "Segura@123")
	uc := NewAuthUseCase(repo, auth.NewJWTManager("segredo-de-teste", 60))

	_, err := uc.Login(context.Background(), "maria@example.com", "SenhaErrada@1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
	assert.NotContains(t, appErr.Message, "SenhaErrada@1")
}

func TestRefreshReissuesToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("segredo-de-teste", 60)
	uc := NewAuthUseCase(&fakeUserRepo{}, jwtManager)

	original, err := jwtManager.Sign(auth.TokenUser{ID: "1", Name: "Maria", Role: entity.RoleClient})
	require.NoError(t, err)

	result, err := uc.Refresh(original)
	require.NoError(t, err)

	parsed, err := jwtManager.Verify(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Maria", parsed.Name)
}

func TestRefreshRejectsTamperedToken(t *testing.T) {
	uc := NewAuthUseCase(&fakeUserRepo{}, auth.NewJWTManager("segredo-de-teste", 60))

	other := auth.NewJWTManager("outro-segredo", 60)
	token, err := other.Sign(auth.TokenUser{ID: "1", Name: "Maria", Role: entity.RoleClient})
	require.NoError(t, err)

	_, err = uc.Refresh(token)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.Status)
	assert.Contains(t, appErr.Message, "Token inválido")
}
