package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, domain, product_id, product_name, direction,
	quantity, quantity_before, quantity_after,
	employee_name, note, category, subcategory, unit, occurred_at, created_at`

// sortColumns whitelists ledger sort fields. Anything else falls back to
// the movement date.
var sortColumns = map[string]string{
	"occurred_at":   "occurred_at",
	"created_at":    "created_at",
	"quantity":      "quantity",
	"direction":     "direction",
	"product_name":  "product_name",
	"employee_name": "employee_name",
}

// MovementRepo implements the MovementRepository port over PostgreSQL
// (usable with pool or tx). Entries are append-only: no update statement exists.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the adapter. Pass pool or tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persists one ledger entry.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, domain, product_id, product_name, direction,
			quantity, quantity_before, quantity_after,
			employee_name, note, category, subcategory, unit, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Domain, m.ProductID, m.ProductName, m.Direction,
		m.Quantity, m.QuantityBefore, m.QuantityAfter,
		m.EmployeeName, m.Note, m.Category, m.Subcategory, m.Unit, m.OccurredAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List queries the ledger. Newest first unless the filter says otherwise.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE domain = $1`
	args := []any{filter.Domain}
	pos := 2
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.Direction != "" {
		query += fmt.Sprintf(" AND direction = $%d", pos)
		args = append(args, filter.Direction)
		pos++
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = "occurred_at"
	}
	order := "DESC"
	if filter.SortOrder == "asc" {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", col, order)
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", pos)
		args = append(args, filter.Limit)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.Domain, &m.ProductID, &m.ProductName, &m.Direction,
			&m.Quantity, &m.QuantityBefore, &m.QuantityAfter,
			&m.EmployeeName, &m.Note, &m.Category, &m.Subcategory, &m.Unit,
			&m.OccurredAt, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteOlderThan bulk-deletes entries dated before cutoff.
func (r *MovementRepo) DeleteOlderThan(d entity.Domain, cutoff time.Time) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE domain = $1 AND occurred_at < $2`, d, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete movements older than cutoff: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByProduct cascades a product deletion.
func (r *MovementRepo) DeleteByProduct(productID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete movements for product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Count totals the domain's entries.
func (r *MovementRepo) Count(d entity.Domain) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM movements WHERE domain = $1`, d).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// CountOlderThan counts entries eligible for retention deletion.
func (r *MovementRepo) CountOlderThan(d entity.Domain, cutoff time.Time) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM movements WHERE domain = $1 AND occurred_at < $2`, d, cutoff).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count old movements: %w", err)
	}
	return n, nil
}

// LedgerTotals sums both sides of a product's ledger in one round trip.
func (r *MovementRepo) LedgerTotals(productID string) (decimal.Decimal, decimal.Decimal, error) {
	var delivered, used decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT
		   COALESCE(sum(quantity) FILTER (WHERE direction IN ($2, $3)), 0),
		   COALESCE(sum(quantity) FILTER (WHERE direction IN ($4, $5)), 0)
		 FROM movements WHERE product_id = $1`,
		productID,
		entity.DirectionDelivery, entity.DirectionCorrection,
		entity.DirectionUsage, entity.DirectionLoss).Scan(&delivered, &used)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("ledger totals: %w", err)
	}
	return delivered, used, nil
}
