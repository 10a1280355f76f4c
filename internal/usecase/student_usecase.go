package usecase

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/validation"
)

type StudentUseCase struct {
	studentRepo repository.StudentRepository
	validate    *validator.Validate
}

func NewStudentUseCase(studentRepo repository.StudentRepository, validate *validator.Validate) *StudentUseCase {
	return &StudentUseCase{
		studentRepo: studentRepo,
		validate:    validate,
	}
}

type AddressInput struct {
	Street       string `json:"logradouro" validate:"required"`
	Municipality string `json:"municipio" validate:"required"`
}

type StudentInput struct {
	Name           string       `json:"nome" validate:"required,min=3,max=100"`
	GraduationYear int          `json:"ano_formatura" validate:"required,gte=2021,lte=2050"`
	Role           string       `json:"tipo" validate:"required,oneof=Admin Estudante Professor"`
	AverageGrade   *float64     `json:"nota_media" validate:"required"`
	Address        AddressInput `json:"endereco" validate:"required"`
}

func (uc *StudentUseCase) List(ctx context.Context) ([]entity.Student, error) {
	students, err := uc.studentRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter a listagem dos estudantes", err)
	}
	return students, nil
}

func (uc *StudentUseCase) GetByID(ctx context.Context, id string) ([]entity.Student, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidID(id, err)
	}
	students, err := uc.studentRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o estudante pelo id", err)
	}
	return students, nil
}

func (uc *StudentUseCase) SearchByName(ctx context.Context, name string) ([]entity.Student, error) {
	students, err := uc.studentRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o estudante pelo nome", err)
	}
	return students, nil
}

func (uc *StudentUseCase) Create(ctx context.Context, input StudentInput) (*entity.Student, error) {
	if violations := validation.Check(uc.validate, input); len(violations) > 0 {
		return nil, apperrors.Validation(http.StatusBadRequest, violations)
	}

	created, err := uc.studentRepo.Insert(ctx, studentFromInput(input))
	if err != nil {
		return nil, apperrors.BadRequest("Erro ao incluir o estudante", err)
	}
	return created, nil
}

func (uc *StudentUseCase) Update(ctx context.Context, id string, input StudentInput) (repository.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, apperrors.InvalidID(id, err)
	}

	if violations := validation.Check(uc.validate, input); len(violations) > 0 {
		return repository.UpdateResult{}, apperrors.Validation(http.StatusForbidden, violations)
	}

	result, err := uc.studentRepo.Update(ctx, objectID, studentFromInput(input))
	if err != nil {
		return repository.UpdateResult{}, apperrors.BadRequest("Erro ao alterar o estudante", err)
	}
	return result, nil
}

func (uc *StudentUseCase) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, apperrors.InvalidID(id, err)
	}
	result, err := uc.studentRepo.Delete(ctx, objectID)
	if err != nil {
		return repository.DeleteResult{}, apperrors.BadRequest("Erro ao excluir o estudante", err)
	}
	return result, nil
}

func studentFromInput(input StudentInput) *entity.Student {
	return &entity.Student{
		Name:           input.Name,
		GraduationYear: input.GraduationYear,
		Role:           input.Role,
		AverageGrade:   *input.AverageGrade,
		Address: entity.Address{
			Street:       input.Address.Street,
			Municipality: input.Address.Municipality,
		},
	}
}
