package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/application/ledger"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
)

const maxDescriptionLen = 500

// ProductUseCase registry CRUD per warehouse domain. Quantity changes go
// through the ledger use case; the field-edit path here is the
// administrative override that bypasses it.
type ProductUseCase struct {
	repo      repository.ProductRepository
	movements repository.MovementRepository
	txRunner  ledger.TxRunner
}

// NewProductUseCase builds the use case. The movement repository backs the
// ledger-derived totals; the txRunner is used for the delete cascade
// (product row + its ledger entries in one transaction).
func NewProductUseCase(repo repository.ProductRepository, movements repository.MovementRepository, txRunner ledger.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, txRunner: txRunner}
}

// respond maps the entity to its response. Domains without cumulative
// counters get their totals summed from the ledger, so the response never
// shows the stale zeros stored on the product row.
func (uc *ProductUseCase) respond(cfg warehouse.Config, p *entity.Product) (*dto.ProductResponse, error) {
	resp := dto.ToProductResponse(p)
	if cfg.TracksTotals {
		return resp, nil
	}
	delivered, used, err := uc.movements.LedgerTotals(p.ID)
	if err != nil {
		return nil, err
	}
	resp.TotalDelivered = delivered
	resp.TotalUsed = used
	return resp, nil
}

// Create adds a product with its baseline quantity. The baseline is not a
// ledger entry. Name uniqueness follows the domain's catalog rule.
func (uc *ProductUseCase) Create(d entity.Domain, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	cfg, err := warehouse.Lookup(d)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !cfg.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q for domain %q", domain.ErrValidation, in.Category, d)
	}
	if !cfg.ValidSubcategory(in.Subcategory) {
		return nil, fmt.Errorf("%w: unknown subcategory %q for domain %q", domain.ErrValidation, in.Subcategory, d)
	}
	if in.Unit == "" {
		in.Unit = cfg.DefaultUnit
	}
	if !cfg.ValidUnit(in.Unit) {
		return nil, fmt.Errorf("%w: unknown unit %q for domain %q", domain.ErrValidation, in.Unit, d)
	}
	if in.InitialQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: initial quantity %s", domain.ErrInvalidAmount, in.InitialQuantity)
	}
	if len(in.Description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionLen)
	}

	uniqueWithin := ""
	if cfg.NameUniquePerSubcategory {
		uniqueWithin = in.Subcategory
	}
	existing, err := uc.repo.GetByName(d, uniqueWithin, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateName, in.Name)
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Domain:      d,
		Name:        in.Name,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Unit:        in.Unit,
		Description: in.Description,
		Quantity:    in.InitialQuantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product), nil
}

// GetByID fetches one product, scoped to the domain.
func (uc *ProductUseCase) GetByID(d entity.Domain, id string) (*dto.ProductResponse, error) {
	cfg, err := warehouse.Lookup(d)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Domain != d {
		return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, id)
	}
	return uc.respond(cfg, product)
}

// List returns the domain's products sorted by name. An empty result is
// valid. Filter values are validated against the catalog when present.
func (uc *ProductUseCase) List(d entity.Domain, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	cfg, err := warehouse.Lookup(d)
	if err != nil {
		return nil, err
	}
	if filter.Category != "" && !cfg.ValidCategory(filter.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, filter.Category)
	}
	if filter.Subcategory != "" && !cfg.ValidSubcategory(filter.Subcategory) {
		return nil, fmt.Errorf("%w: unknown subcategory %q", domain.ErrValidation, filter.Subcategory)
	}
	list, err := uc.repo.List(d, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.respond(cfg, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// UpdateFields applies a partial administrative edit, bypassing the ledger.
// A non-nil Quantity is a raw override and writes no ledger entry.
func (uc *ProductUseCase) UpdateFields(d entity.Domain, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	cfg, err := warehouse.Lookup(d)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Domain != d {
		return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, id)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrValidation)
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		if !cfg.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *in.Category)
		}
		product.Category = *in.Category
	}
	if in.Subcategory != nil {
		if !cfg.ValidSubcategory(*in.Subcategory) {
			return nil, fmt.Errorf("%w: unknown subcategory %q", domain.ErrValidation, *in.Subcategory)
		}
		product.Subcategory = *in.Subcategory
	}
	if in.Unit != nil {
		if !cfg.ValidUnit(*in.Unit) {
			return nil, fmt.Errorf("%w: unknown unit %q", domain.ErrValidation, *in.Unit)
		}
		product.Unit = *in.Unit
	}
	if in.Description != nil {
		if len(*in.Description) > maxDescriptionLen {
			return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, maxDescriptionLen)
		}
		product.Description = *in.Description
	}
	if in.Quantity != nil {
		if in.Quantity.IsNegative() {
			return nil, fmt.Errorf("%w: quantity override %s", domain.ErrInvalidAmount, *in.Quantity)
		}
		product.Quantity = *in.Quantity
	}
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.respond(cfg, product)
}

// Delete removes the product and cascades its ledger entries in one
// transaction.
func (uc *ProductUseCase) Delete(ctx context.Context, d entity.Domain, id string) error {
	return uc.txRunner.Run(ctx, func(products repository.ProductRepository, movements repository.MovementRepository) error {
		product, err := products.GetForUpdate(id)
		if err != nil {
			return err
		}
		if product == nil || product.Domain != d {
			return fmt.Errorf("%w: product %q", domain.ErrNotFound, id)
		}
		if _, err := movements.DeleteByProduct(id); err != nil {
			return err
		}
		return products.Delete(id)
	})
}
