package usecase

import (
	"fmt"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
)

// MovementUseCase read-only ledger queries. Writes go through the ledger
// use case only.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase builds the use case.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List queries the ledger, newest first by default.
func (uc *MovementUseCase) List(d entity.Domain, filter repository.MovementFilter) ([]dto.MovementResponse, error) {
	if _, err := warehouse.Lookup(d); err != nil {
		return nil, err
	}
	if filter.Direction != "" {
		switch filter.Direction {
		case entity.DirectionDelivery, entity.DirectionUsage, entity.DirectionCorrection, entity.DirectionLoss:
		default:
			return nil, fmt.Errorf("%w: unknown direction %q", domain.ErrValidation, filter.Direction)
		}
	}
	filter.Domain = d
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMovementResponse(m))
	}
	return items, nil
}
