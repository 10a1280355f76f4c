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

// Reference point used when a proximity search omits the coordinates.
const (
	DefaultLatitude  = -23.26428
	DefaultLongitude = -47.29804
)

type WalkerUseCase struct {
	walkerRepo repository.WalkerRepository
	validate   *validator.Validate
}

func NewWalkerUseCase(walkerRepo repository.WalkerRepository, validate *validator.Validate) *WalkerUseCase {
	return &WalkerUseCase{
		walkerRepo: walkerRepo,
		validate:   validate,
	}
}

type TestimonialInput struct {
	Name    string   `json:"nome" validate:"required"`
	Stars   *float64 `json:"estrelas" validate:"required"`
	Comment string   `json:"comentario"`
}

type WalkerInput struct {
	Name         string             `json:"nome" validate:"required"`
	Stars        *float64           `json:"estrelas" validate:"required"`
	Testimonials []TestimonialInput `json:"depoimentos" validate:"omitempty,dive"`
	Location     *LocationInput     `json:"localizacao" validate:"omitempty"`
}

func (uc *WalkerUseCase) List(ctx context.Context) ([]entity.Walker, error) {
	walkers, err := uc.walkerRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter a listagem dos passeadores", err)
	}
	return walkers, nil
}

func (uc *WalkerUseCase) GetByID(ctx context.Context, id string) ([]entity.Walker, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidID(id, err)
	}
	walkers, err := uc.walkerRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o passeador pelo id", err)
	}
	return walkers, nil
}

func (uc *WalkerUseCase) SearchByName(ctx context.Context, name string) ([]entity.Walker, error) {
	walkers, err := uc.walkerRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o passeador pelo nome", err)
	}
	return walkers, nil
}

func (uc *WalkerUseCase) Create(ctx context.Context, input WalkerInput) (*entity.Walker, error) {
	if violations := validation.Check(uc.validate, input); len(violations) > 0 {
		return nil, apperrors.Validation(http.StatusBadRequest, violations)
	}

	created, err := uc.walkerRepo.Insert(ctx, walkerFromInput(input))
	if err != nil {
		return nil, apperrors.BadRequest("Erro ao incluir o passeador", err)
	}
	return created, nil
}

func (uc *WalkerUseCase) Update(ctx context.Context, id string, input WalkerInput) (repository.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, apperrors.InvalidID(id, err)
	}

	if violations := validation.Check(uc.validate, input); len(violations) > 0 {
		return repository.UpdateResult{}, apperrors.Validation(http.StatusForbidden, violations)
	}

	result, err := uc.walkerRepo.Update(ctx, objectID, walkerFromInput(input))
	if err != nil {
		return repository.UpdateResult{}, apperrors.BadRequest("Erro ao alterar o passeador", err)
	}
	return result, nil
}

func (uc *WalkerUseCase) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, apperrors.InvalidID(id, err)
	}
	result, err := uc.walkerRepo.Delete(ctx, objectID)
	if err != nil {
		return repository.DeleteResult{}, apperrors.BadRequest("Erro ao excluir o passeador", err)
	}
	return result, nil
}

// Nearby runs the proximity pipeline. Either coordinate left nil falls back
// to the fixed reference point.
func (uc *WalkerUseCase) Nearby(ctx context.Context, lat, lng *float64) ([]bson.M, error) {
	latitude, longitude := coordinatesOrDefault(lat, lng)
	results, err := uc.walkerRepo.FindNearby(ctx, latitude, longitude)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter os passeadores próximos", err)
	}
	return results, nil
}

func coordinatesOrDefault(lat, lng *float64) (float64, float64) {
	latitude, longitude := DefaultLatitude, DefaultLongitude
	if lat != nil {
		latitude = *lat
	}
	if lng != nil {
		longitude = *lng
	}
	return latitude, longitude
}

func walkerFromInput(input WalkerInput) *entity.Walker {
	walker := &entity.Walker{
		Name:  input.Name,
		Stars: *input.Stars,
	}
	for _, t := range input.Testimonials {
		walker.Testimonials = append(walker.Testimonials, entity.Testimonial{
			Name:    t.Name,
			Stars:   *t.Stars,
			Comment: t.Comment,
		})
	}
	if input.Location != nil {
		walker.Location = &entity.GeoPoint{
			Type:        input.Location.Type,
			Coordinates: input.Location.Coordinates,
		}
	}
	return walker
}
