package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dogwalker/internal/domain/entity"
	"dogwalker/internal/domain/repository"
	apperrors "dogwalker/pkg/errors"
	"dogwalker/pkg/validation"
)

type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
	validate     *validator.Validate
}

func NewProviderUseCase(providerRepo repository.ProviderRepository, validate *validator.Validate) *ProviderUseCase {
	return &ProviderUseCase{
		providerRepo: providerRepo,
		validate:     validate,
	}
}

type LocationInput struct {
	Type        string    `json:"type" validate:"required,eq=Point"`
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
}

// ProviderInput declares the prestadores constraint set. On update the
// document id travels in the body as _id, the route this API has always
// exposed.
type ProviderInput struct {
	ID            string        `json:"_id" validate:"-"`
	CNPJ          string        `json:"cnpj" validate:"required,numeric,len=14"`
	LegalName     string        `json:"razao_social" validate:"required,alphanum_space,min=3,max=100"`
	ActivityCode  *int          `json:"cnae_fiscal" validate:"required"`
	TradeName     string        `json:"nome_fantasia"`
	ActivityStart string        `json:"data_inicio_atividade" validate:"omitempty,datetime=2006-01-02"`
	Location      LocationInput `json:"localizacao" validate:"required"`
}

func (uc *ProviderUseCase) List(ctx context.Context) ([]entity.Provider, error) {
	providers, err := uc.providerRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter a listagem dos prestadores de serviço", err)
	}
	return providers, nil
}

func (uc *ProviderUseCase) GetByID(ctx context.Context, id string) ([]entity.Provider, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.InvalidID(id, err)
	}
	providers, err := uc.providerRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o prestador pelo id", err)
	}
	return providers, nil
}

func (uc *ProviderUseCase) SearchByLegalName(ctx context.Context, legalName string) ([]entity.Provider, error) {
	providers, err := uc.providerRepo.SearchByLegalName(ctx, legalName)
	if err != nil {
		return nil, apperrors.Upstream("Erro ao obter o prestador pela razão social", err)
	}
	return providers, nil
}

func (uc *ProviderUseCase) Create(ctx context.Context, input ProviderInput) (*entity.Provider, error) {
	violations, err := uc.checkInput(ctx, input, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, apperrors.Validation(http.StatusBadRequest, violations)
	}

	created, err := uc.providerRepo.Insert(ctx, providerFromInput(input))
	if err != nil {
		return nil, apperrors.BadRequest("Erro ao incluir o prestador", err)
	}
	return created, nil
}

// Update takes the document id from the body's _id field. The cnpj
// uniqueness check excludes the record being updated.
func (uc *ProviderUseCase) Update(ctx context.Context, input ProviderInput) (repository.UpdateResult, error) {
	objectID, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return repository.UpdateResult{}, apperrors.InvalidID(input.ID, err)
	}

	violations, err := uc.checkInput(ctx, input, objectID)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	if len(violations) > 0 {
		return repository.UpdateResult{}, apperrors.Validation(http.StatusForbidden, violations)
	}

	result, err := uc.providerRepo.Update(ctx, objectID, providerFromInput(input))
	if err != nil {
		return repository.UpdateResult{}, apperrors.BadRequest("Erro ao alterar o prestador", err)
	}
	return result, nil
}

func (uc *ProviderUseCase) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, apperrors.InvalidID(id, err)
	}
	result, err := uc.providerRepo.Delete(ctx, objectID)
	if err != nil {
		return repository.DeleteResult{}, apperrors.BadRequest("Erro ao excluir o prestador", err)
	}
	return result, nil
}

func (uc *ProviderUseCase) checkInput(ctx context.Context, input ProviderInput, excludeID primitive.ObjectID) ([]apperrors.FieldError, error) {
	violations := validation.Check(uc.validate, input)

	if input.CNPJ != "" {
		count, err := uc.providerRepo.CountByCNPJ(ctx, input.CNPJ, excludeID)
		if err != nil {
			return nil, apperrors.Upstream("Erro ao verificar a unicidade do CNPJ", err)
		}
		if count > 0 {
			violations = append(violations, apperrors.FieldError{
				Value: input.CNPJ,
				Msg:   fmt.Sprintf("O cnpj %s já está informado em outro Prestador", input.CNPJ),
				Param: "cnpj",
			})
		}
	}

	return violations, nil
}

func providerFromInput(input ProviderInput) *entity.Provider {
	return &entity.Provider{
		CNPJ:          input.CNPJ,
		LegalName:     input.LegalName,
		ActivityCode:  *input.ActivityCode,
		TradeName:     input.TradeName,
		ActivityStart: input.ActivityStart,
		Location: entity.GeoPoint{
			Type:        input.Location.Type,
			Coordinates: input.Location.Coordinates,
		},
	}
}
