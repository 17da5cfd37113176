package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Domain identifies one of the three warehouse areas. Values match the
// vocabulary the crews already use, so they double as API path segments.
type Domain string

const (
	DomainAlcohol Domain = "alkohole"
	DomainNaciagi Domain = "naciagi"
	DomainSuchy   Domain = "suchy"
)

// DeliverySnapshot is a denormalized copy of the most recent delivery.
// It is a display cache, not authoritative: the ledger is.
type DeliverySnapshot struct {
	Date        time.Time       `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	DeliveredBy string          `json:"delivered_by"`
}

// Product is one stocked item within a warehouse domain.
// Quantity changes only through the ledger use case; administrative field
// edits may override it but never write ledger entries.
type Product struct {
	ID          string
	Domain      Domain
	Name        string
	Category    string
	Subcategory string // empty for domains without a subcategory level
	Unit        string
	Description string

	Quantity       decimal.Decimal
	TotalDelivered decimal.Decimal // cumulative; meaningful only where the domain tracks totals
	TotalUsed      decimal.Decimal

	LastDelivery *DeliverySnapshot

	CreatedAt time.Time
	UpdatedAt time.Time
}
