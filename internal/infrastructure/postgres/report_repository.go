package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregation queries for reporting.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the reporting adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// TurnoverByProduct sums deliveries and usages per product over the window.
// Products without movements in the window still appear, with zero sums.
func (r *ReportRepo) TurnoverByProduct(ctx context.Context, d entity.Domain, from, to time.Time) ([]repository.ProductTurnover, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.category,
	    p.subcategory,
	    p.unit,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.direction IN ('dostawa', 'korekta')), 0) AS delivered,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.direction IN ('uzycie', 'strata')), 0)   AS used,
	    p.quantity
	FROM products p
	LEFT JOIN movements m
	    ON m.product_id = p.id
	   AND m.occurred_at BETWEEN $2 AND $3
	WHERE p.domain = $1
	GROUP BY p.id, p.name, p.category, p.subcategory, p.unit, p.quantity
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, d, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.TurnoverByProduct: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductTurnover
	for rows.Next() {
		var row repository.ProductTurnover
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.Category, &row.Subcategory, &row.Unit,
			&row.Delivered, &row.Used, &row.Current,
		); err != nil {
			return nil, fmt.Errorf("scan turnover row: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
