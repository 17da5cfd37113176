package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
)

// ApplyMovementUseCase is the single chokepoint through which a product's
// quantity changes via a business operation. It validates the movement,
// row-locks the product, updates quantity/totals/last-delivery and appends
// one ledger entry, all within one transaction.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase builds the use case.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// MovementInput describes one requested delivery or usage.
// OccurredAt nil defaults to now; backdated entries are allowed.
type MovementInput struct {
	Domain       entity.Domain
	ProductID    string
	Direction    entity.Direction
	Quantity     decimal.Decimal
	EmployeeName string
	Note         string
	OccurredAt   *time.Time
}

// Apply validates and applies the movement, returning the updated product.
// Validation failures abort before any write. Usage beyond current stock is
// rejected uniformly for every domain.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (*entity.Product, error) {
	cfg, err := warehouse.Lookup(input.Domain)
	if err != nil {
		return nil, err
	}
	if !cfg.AllowsDirection(input.Direction) {
		return nil, fmt.Errorf("%w: operation %q not allowed for domain %q", domain.ErrValidation, input.Direction, input.Domain)
	}
	if !input.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", domain.ErrInvalidAmount, input.Quantity)
	}
	if input.EmployeeName == "" {
		return nil, fmt.Errorf("%w: employee name is required", domain.ErrValidation)
	}

	now := time.Now()
	occurredAt := now
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	var updated *entity.Product
	err = uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		product, err := products.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.Domain != input.Domain {
			return fmt.Errorf("%w: product %q", domain.ErrNotFound, input.ProductID)
		}

		before := product.Quantity
		var after decimal.Decimal
		if input.Direction.Adds() {
			after = before.Add(input.Quantity)
		} else {
			if before.LessThan(input.Quantity) {
				return fmt.Errorf("%w: requested %s, available %s", domain.ErrInsufficientStock, input.Quantity, before)
			}
			after = before.Sub(input.Quantity)
		}

		product.Quantity = after
		if cfg.TracksTotals {
			if input.Direction.Adds() {
				product.TotalDelivered = product.TotalDelivered.Add(input.Quantity)
			} else {
				product.TotalUsed = product.TotalUsed.Add(input.Quantity)
			}
		}
		if input.Direction == entity.DirectionDelivery {
			product.LastDelivery = &entity.DeliverySnapshot{
				Date:        now,
				Quantity:    input.Quantity,
				DeliveredBy: input.EmployeeName,
			}
		}
		product.UpdatedAt = now
		if err := products.Update(product); err != nil {
			return err
		}

		movement := &entity.Movement{
			ID:             uuid.New().String(),
			Domain:         product.Domain,
			ProductID:      product.ID,
			ProductName:    product.Name,
			Direction:      input.Direction,
			Quantity:       input.Quantity,
			QuantityBefore: before,
			QuantityAfter:  after,
			EmployeeName:   input.EmployeeName,
			Note:           input.Note,
			Category:       product.Category,
			Subcategory:    product.Subcategory,
			Unit:           product.Unit,
			OccurredAt:     occurredAt,
			CreatedAt:      now,
		}
		if err := movements.Create(movement); err != nil {
			return err
		}

		// Domains without counters report totals summed from the ledger.
		// Only the returned copy carries them; the row keeps zeros.
		if !cfg.TracksTotals {
			delivered, used, err := movements.LedgerTotals(product.ID)
			if err != nil {
				return err
			}
			product.TotalDelivered = delivered
			product.TotalUsed = used
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
