package usecase

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/validation"
)

type ProfessionalUseCase struct {
	professionalRepo repository.ProfessionalRepository
	validate         *validator.Validate
}

func NewProfessionalUseCase(professionalRepo repository.ProfessionalRepository, validate *validator.Validate) *ProfessionalUseCase {
	return &ProfessionalUseCase{
		professionalRepo: professionalRepo,
		validate:         validate,
	}
}

// ProfessionalInput declares the profissionais constraint set. On update
// the document id travels in the body as _id.
type ProfessionalInput struct {
	ID       string         `json:"_id" validate:"-"`
	Name     string         `json:"nome" validate:"required"`
	Stars    *float64       `json:"estrelas" validate:"required"`
	Location *LocationInput `json:"localizacao" validate:"omitempty"`
}

func (uc *ProfessionalUseCase) List(ctx context.Context) ([]entity.Professional, error) {
	professionals, err := uc.professionalRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter a listagem dos profissionais", err)
	}
	return professionals, nil
}

func (uc *ProfessionalUseCase) GetByID(ctx context.Context, id string) ([]entity.Professional, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidID(id, err)
	}
	professionals, err := uc.professionalRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o profissional pelo id", err)
	}
	return professionals, nil
}

func (uc *ProfessionalUseCase) SearchByName(ctx context.Context, name string) ([]entity.Professional, error) {
	professionals, err := uc.professionalRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o profissional pelo nome", err)
	}
	return professionals, nil
}

func (uc *ProfessionalUseCase) Create(ctx context.Context, input ProfessionalInput) (*entity.Professional, error) {
	if violations := validation.Check(uc.validate, input); len(violations) > 0 {
		return nil, apperrors.Validation(http.StatusBadRequest, violations)
	}

	created, err := uc.professionalRepo.Insert(ctx, professionalFromInput(input))
	if err != nil {
		return nil, apperrors.BadRequest("Erro ao incluir o profissional", err)
	}
	return created, nil
}

func (uc *ProfessionalUseCase) Update(ctx context.Context, input ProfessionalInput) (repository.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return repository.UpdateResult{}, apperrors.InvalidID(input.ID, err)
	}

	if violations := validation.Check(uc.validate, input); len(violations) > 0 {
		return repository.UpdateResult{}, apperrors.Validation(http.StatusForbidden, violations)
	}

	result, err := uc.professionalRepo.Update(ctx, objectID, professionalFromInput(input))
	if err != nil {
		return repository.UpdateResult{}, apperrors.BadRequest("Erro ao alterar o profissional", err)
	}
	return result, nil
}

func (uc *ProfessionalUseCase) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, apperrors.InvalidID(id, err)
	}
	result, err := uc.professionalRepo.Delete(ctx, objectID)
	if err != nil {
		return repository.DeleteResult{}, apperrors.BadRequest("Erro ao excluir o profissional", err)
	}
	return result, nil
}

func (uc *ProfessionalUseCase) Nearby(ctx context.Context, lat, lng *float64) ([]bson.M, error) {
	latitude, longitude := coordinatesOrDefault(lat, lng)
	results, err := uc.professionalRepo.FindNearby(ctx, latitude, longitude)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter os profissionais próximos", err)
	}
	return results, nil
}

func professionalFromInput(input ProfessionalInput) *entity.Professional {
	professional := &entity.Professional{
		Name:  input.Name,
		Stars: *input.Stars,
	}
	if input.Location != nil {
		professional.Location = &entity.GeoPoint{
			Type:        input.Location.Type,
			Coordinates: input.Location.Coordinates,
		}
	}
	return professional
}
