package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// MovementFilter narrows ledger queries. Zero values match everything;
// Limit <= 0 means no truncation. SortBy outside the implementation's
// whitelist falls back to the movement date.
type MovementFilter struct {
	Domain    entity.Domain
	ProductID string
	Direction entity.Direction
	Limit     int
	SortBy    string
	SortOrder string // "asc" | "desc"; default desc (newest first)
}

// MovementRepository defines the persistence port for ledger entries.
// Entries are append-only: there is no update operation.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List(filter MovementFilter) ([]*entity.Movement, error)
	// DeleteOlderThan bulk-deletes entries dated before cutoff. Returns rows deleted.
	DeleteOlderThan(domain entity.Domain, cutoff time.Time) (int64, error)
	// DeleteByProduct cascades a product deletion. Returns rows deleted.
	DeleteByProduct(productID string) (int64, error)
	Count(domain entity.Domain) (int64, error)
	CountOlderThan(domain entity.Domain, cutoff time.Time) (int64, error)
	// LedgerTotals sums the delivered-side and used-side magnitudes for one
	// product. Serves domains that derive cumulative totals from the ledger
	// instead of maintaining counters on the product row.
	LedgerTotals(productID string) (delivered, used decimal.Decimal, err error)
}
