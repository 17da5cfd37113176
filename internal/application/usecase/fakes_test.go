package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func qty(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Product repository fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	// failZero simulates a per-domain failure during the bulk reset.
	failZero map[entity.Domain]error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[string]*entity.Product),
		failZero: make(map[entity.Domain]error),
	}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) GetByName(d entity.Domain, subcategory, name string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Domain == d && p.Name == name && (subcategory == "" || p.Subcategory == subcategory) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(d entity.Domain, filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Domain != d {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Subcategory != "" && p.Subcategory != filter.Subcategory {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return errors.New("not stored")
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ZeroQuantities(d entity.Domain, zeroTotals bool) (int64, error) {
	if err := r.failZero[d]; err != nil {
		return 0, err
	}
	var n int64
	for _, p := range r.products {
		if p.Domain != d {
			continue
		}
		p.Quantity = decimal.Zero
		if zeroTotals {
			p.TotalDelivered = decimal.Zero
			p.TotalUsed = decimal.Zero
		}
		n++
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Movement repository fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	entries []*entity.Movement
	// failDelete simulates a per-domain failure during retention cleanup.
	failDelete map[entity.Domain]error
}

func newFakeMovementRepo(entries ...*entity.Movement) *fakeMovementRepo {
	r := &fakeMovementRepo{failDelete: make(map[entity.Domain]error)}
	for _, m := range entries {
		cp := *m
		r.entries = append(r.entries, &cp)
	}
	return r
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *fakeMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.entries {
		if filter.Domain != "" && m.Domain != filter.Domain {
			continue
		}
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Direction != "" && m.Direction != filter.Direction {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMovementRepo) DeleteOlderThan(d entity.Domain, cutoff time.Time) (int64, error) {
	if err := r.failDelete[d]; err != nil {
		return 0, err
	}
	var kept []*entity.Movement
	var deleted int64
	for _, m := range r.entries {
		if m.Domain == d && m.OccurredAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.entries = kept
	return deleted, nil
}

func (r *fakeMovementRepo) DeleteByProduct(productID string) (int64, error) {
	var kept []*entity.Movement
	var deleted int64
	for _, m := range r.entries {
		if m.ProductID == productID {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.entries = kept
	return deleted, nil
}

func (r *fakeMovementRepo) Count(d entity.Domain) (int64, error) {
	var n int64
	for _, m := range r.entries {
		if m.Domain == d {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) CountOlderThan(d entity.Domain, cutoff time.Time) (int64, error) {
	var n int64
	for _, m := range r.entries {
		if m.Domain == d && m.OccurredAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) LedgerTotals(productID string) (decimal.Decimal, decimal.Decimal, error) {
	delivered, used := decimal.Zero, decimal.Zero
	for _, m := range r.entries {
		if m.ProductID != productID {
			continue
		}
		if m.Direction.Adds() {
			delivered = delivered.Add(m.Quantity)
		} else {
			used = used.Add(m.Quantity)
		}
	}
	return delivered, used, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Transaction runner fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	return fn(r.products, r.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Weekly plan repository fake
// ──────────────────────────────────────────────────────────────────────────────

type fakePlanRepo struct {
	entries map[string]*entity.WeeklyPlanEntry
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{entries: make(map[string]*entity.WeeklyPlanEntry)}
}

func (r *fakePlanRepo) Create(e *entity.WeeklyPlanEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakePlanRepo) GetByID(id string) (*entity.WeeklyPlanEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakePlanRepo) ListByWeek(yearWeek string) ([]*entity.WeeklyPlanEntry, error) {
	var out []*entity.WeeklyPlanEntry
	for _, e := range r.entries {
		if e.YearWeek == yearWeek {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePlanRepo) Update(e *entity.WeeklyPlanEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakePlanRepo) Delete(id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakePlanRepo) DeleteOtherWeeks(keepYearWeek string) (int64, error) {
	var n int64
	for id, e := range r.entries {
		if e.YearWeek != keepYearWeek {
			delete(r.entries, id)
			n++
		}
	}
	return n, nil
}
