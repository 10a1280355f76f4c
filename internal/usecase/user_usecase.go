package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/validation"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

func NewUserUseCase(userRepo repository.UserRepository, validate *validator.Validate) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		validate: validate,
	}
}

// UserInput declares the usuarios constraint set. Every check runs; the
// violations accumulate into a single list.
type UserInput struct {
	Name   string `json:"nome" validate:"required,alpha_space,min=3,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Senha  string `json:"senha" validate:"required,min=6,senha_forte"`
	Active *bool  `json:"ativo" validate:"required"`
	Role   string `json:"tipo" validate:"omitempty,oneof=Admin Cliente Profissional"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

func (uc *UserUseCase) List(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter a listagem dos usuários", err)
	}
	return users, nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) ([]entity.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidID(id, err)
	}
	users, err := uc.userRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o usuário pelo id", err)
	}
	return users, nil
}

func (uc *UserUseCase) SearchByName(ctx context.Context, filter string) ([]entity.User, error) {
	users, err := uc.userRepo.SearchByName(ctx, filter)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o usuário pelo nome", err)
	}
	return users, nil
}

// Create validates, hashes the password and persists. The avatar is always
// server-generated from the name; the submitted value is only format
// checked. Validation failures answer 403, preserving the route's
// historical status.
func (uc *UserUseCase) Create(ctx context.Context, input UserInput) (*entity.User, error) {
	violations, err := uc.checkInput(ctx, input, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, apperrors.Validation(http.StatusForbidden, violations)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("Erro ao processar a senha do usuário", err)
	}

	user := &entity.User{
		Name:   input.Name,
		Email:  input.Email,
		Senha:  string(hash),
		Active: *input.Active,
		Role:   roleOrDefault(input.Role),
		Avatar: defaultAvatar(input.Name),
	}

	created, err := uc.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, apperrors.BadRequest("Erro ao incluir o usuário", err)
	}
	return created, nil
}

// Update replaces the document's fields by id. The email uniqueness check
// excludes the record being updated.
func (uc *UserUseCase) Update(ctx context.Context, id string, input UserInput) (repository.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, apperrors.InvalidID(id, err)
	}

	violations, err := uc.checkInput(ctx, input, objectID)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	if len(violations) > 0 {
		return repository.UpdateResult{}, apperrors.Validation(http.StatusForbidden, violations)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return repository.UpdateResult{}, apperrors.Internal("Erro ao processar a senha do usuário", err)
	}

	user := &entity.User{
		Name:   input.Name,
		Email:  input.Email,
		Senha:  string(hash),
		Active: *input.Active,
		Role:   roleOrDefault(input.Role),
		Avatar: input.Avatar,
	}
	if user.Avatar == "" {
		user.Avatar = defaultAvatar(input.Name)
	}

	result, err := uc.userRepo.Update(ctx, objectID, user)
	if err != nil {
		return repository.UpdateResult{}, apperrors.BadRequest("Erro ao alterar o usuário", err)
	}
	return result, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, apperrors.InvalidID(id, err)
	}
	result, err := uc.userRepo.Delete(ctx, objectID)
	if err != nil {
		return repository.DeleteResult{}, apperrors.BadRequest("Erro ao excluir o usuário", err)
	}
	return result, nil
}

// checkInput runs the declared field checks plus the cross-record email
// uniqueness read. The read and the later write are separate operations;
// two concurrent creates with the same email can both pass here.
func (uc *UserUseCase) checkInput(ctx context.Context, input UserInput, excludeID primitive.ObjectID) ([]apperrors.FieldError, error) {
	violations := validation.Check(uc.validate, input)

	if input.Email != "" {
		count, err := uc.userRepo.CountByEmail(ctx, input.Email, excludeID)
		if err != nil {
			return nil, apperrors.Upstream("Erro ao verificar a unicidade do email", err)
		}
		if count > 0 {
			violations = append(violations, apperrors.FieldError{
				Value: input.Email,
				Msg:   fmt.Sprintf("O email %s já está informado em outro usuário", input.Email),
				Param: "email",
			})
		}
	}

	return violations, nil
}

func roleOrDefault(role string) string {
	if role == "" {
		return entity.RoleClient
	}
	return role
}

func defaultAvatar(name string) string {
	return "https://ui-avatars.com/api/?background=3700B3&color=FFFFFF&name=" +
		strings.ReplaceAll(name, " ", "+")
}
