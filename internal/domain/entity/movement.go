package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction of a stock movement. Quantities are stored as unsigned
// magnitudes; the direction carries the sign semantics.
type Direction string

const (
	DirectionDelivery   Direction = "dostawa"
	DirectionUsage      Direction = "uzycie"
	DirectionCorrection Direction = "korekta" // alcohol only; adds stock
	DirectionLoss       Direction = "strata"  // alcohol only; removes stock
)

// Adds reports whether the direction increases stock.
func (d Direction) Adds() bool {
	return d == DirectionDelivery || d == DirectionCorrection
}

// Movement is one recorded delivery or usage event against a product.
// Immutable once written; removed only by product-deletion cascade or the
// retention cleanup. ProductName, Category, Subcategory and Unit are
// captured at write time and may drift from the live product record.
type Movement struct {
	ID          string
	Domain      Domain
	ProductID   string
	ProductName string

	Direction      Direction
	Quantity       decimal.Decimal // magnitude, always > 0
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal

	EmployeeName string
	Note         string

	Category    string
	Subcategory string
	Unit        string

	OccurredAt time.Time // defaults to write time; caller-supplied for backdated entries
	CreatedAt  time.Time
}
