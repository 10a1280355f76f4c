package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"dogwalker/internal/domain/repository"
	"dogwalker/internal/infrastructure/auth"
	apperrors "dogwalker/pkg/errors"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	jwtManager *auth.JWTManager
}

func NewAuthUseCase(userRepo repository.UserRepository, jwtManager *auth.JWTManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

type LoginResult struct {
	AccessToken string         `json:"access_token"`
	Usuario     auth.TokenUser `json:"usuario"`
}

// Login checks the credential pair and signs a token embedding the user's
// identity. An unknown email answers 404; a wrong password 403 with a
// message that never echoes the submitted value.
func (uc *AuthUseCase) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NotFound("Usuário", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)); err != nil {
		return nil, apperrors.Forbidden("Não foi possível efetuar o login: senha incorreta", nil)
	}

	tokenUser := auth.TokenUser{
		ID:   user.ID.Hex(),
		Name: user.Name,
		Role: user.Role,
	}
	token, err := uc.jwtManager.Sign(tokenUser)
	if err != nil {
		return nil, apperrors.Internal("Erro ao gerar o token de acesso", err)
	}

	return &LoginResult{AccessToken: token, Usuario: tokenUser}, nil
}

// Refresh verifies a previously issued token and reissues a fresh one with
// the same identity payload.
func (uc *AuthUseCase) Refresh(tokenString string) (*LoginResult, error) {
	tokenUser, err := uc.jwtManager.Verify(tokenString)
	if err != nil {
		return nil, apperrors.Forbidden("Token inválido: "+err.Error(), err)
	}

	token, err := uc.jwtManager.Sign(*tokenUser)
	if err != nil {
		return nil, apperrors.Internal("Erro ao gerar o token de acesso", err)
	}

	return &LoginResult{AccessToken: token, Usuario: *tokenUser}, nil
}
