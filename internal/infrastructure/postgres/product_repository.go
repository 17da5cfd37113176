package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, domain, name, category, subcategory, unit, description,
	quantity, total_delivered, total_used,
	last_delivery_date, last_delivery_quantity, last_delivery_by,
	created_at, updated_at`

// ProductRepo implements the ProductRepository port over PostgreSQL
// (usable with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, domain, name, category, subcategory, unit, description,
			quantity, total_delivered, total_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Domain, product.Name, product.Category, product.Subcategory,
		product.Unit, product.Description,
		product.Quantity, product.TotalDelivered, product.TotalUsed,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, product.Name)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches one product by ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate fetches one product and locks its row (SELECT FOR UPDATE)
// for the enclosing transaction.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName fetches by name within a domain; subcategory narrows the match
// when non-empty. Names compare case-insensitively.
func (r *ProductRepo) GetByName(d entity.Domain, subcategory, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE domain = $1 AND lower(name) = lower($2)`
	args := []any{d, name}
	if subcategory != "" {
		query += ` AND subcategory = $3`
		args = append(args, subcategory)
	}
	return r.scanOne(r.q.QueryRow(context.Background(), query, args...))
}

// List returns the domain's products matching the filter, sorted by name.
func (r *ProductRepo) List(d entity.Domain, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE domain = $1`
	args := []any{d}
	pos := 2
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, filter.Category)
		pos++
	}
	if filter.Subcategory != "" {
		query += fmt.Sprintf(" AND subcategory = $%d", pos)
		args = append(args, filter.Subcategory)
	}
	query += " ORDER BY name"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update persists every mutable field, including the quantity state and the
// last-delivery snapshot.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, subcategory = $4, unit = $5, description = $6,
			quantity = $7, total_delivered = $8, total_used = $9,
			last_delivery_date = $10, last_delivery_quantity = $11, last_delivery_by = $12,
			updated_at = $13
		WHERE id = $1`
	var ldDate *time.Time
	var ldQty *decimal.Decimal
	var ldBy *string
	if product.LastDelivery != nil {
		ldDate = &product.LastDelivery.Date
		ldQty = &product.LastDelivery.Quantity
		ldBy = &product.LastDelivery.DeliveredBy
	}
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Subcategory, product.Unit, product.Description,
		product.Quantity, product.TotalDelivered, product.TotalUsed,
		ldDate, ldQty, ldBy,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, product.Name)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %q", domain.ErrNotFound, product.ID)
	}
	return nil
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %q", domain.ErrNotFound, id)
	}
	return nil
}

// ZeroQuantities bulk-resets the domain's quantities in one UPDATE.
func (r *ProductRepo) ZeroQuantities(d entity.Domain, zeroTotals bool) (int64, error) {
	query := `UPDATE products SET quantity = 0, updated_at = now() WHERE domain = $1`
	if zeroTotals {
		query = `UPDATE products SET quantity = 0, total_delivered = 0, total_used = 0, updated_at = now() WHERE domain = $1`
	}
	cmd, err := r.q.Exec(context.Background(), query, d)
	if err != nil {
		return 0, fmt.Errorf("zero quantities: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var ldDate *time.Time
	var ldQty *decimal.Decimal
	var ldBy *string
	err := row.Scan(
		&p.ID, &p.Domain, &p.Name, &p.Category, &p.Subcategory, &p.Unit, &p.Description,
		&p.Quantity, &p.TotalDelivered, &p.TotalUsed,
		&ldDate, &ldQty, &ldBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if ldDate != nil {
		p.LastDelivery = &entity.DeliverySnapshot{Date: *ldDate}
		if ldQty != nil {
			p.LastDelivery.Quantity = *ldQty
		}
		if ldBy != nil {
			p.LastDelivery.DeliveredBy = *ldBy
		}
	}
	return &p, nil
}
