package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// ProductTurnover aggregates one product's ledger over a date window.
type ProductTurnover struct {
	ProductID   string
	ProductName string
	Category    string
	Subcategory string
	Unit        string
	Delivered   decimal.Decimal
	Used        decimal.Decimal
	Current     decimal.Decimal
}

// ReportRepository defines read-only aggregation queries for reporting.
type ReportRepository interface {
	TurnoverByProduct(ctx context.Context, domain entity.Domain, from, to time.Time) ([]ProductTurnover, error)
}
