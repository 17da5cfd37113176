package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// ApplyMovementRequest input for a business movement against a product.
// OperationType distinguishes it from a plain field edit on the shared
// PUT endpoint: dostawa, uzycie, korekta or strata.
type ApplyMovementRequest struct {
	OperationType string          `json:"operation_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	EmployeeName  string          `json:"employee_name"`
	Note          string          `json:"note"`
	OccurredAt    *time.Time      `json:"occurred_at"`
}

// MovementResponse output for one ledger entry.
type MovementResponse struct {
	ID             string          `json:"id"`
	Domain         string          `json:"domain"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Direction      string          `json:"direction"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	EmployeeName   string          `json:"employee_name"`
	Note           string          `json:"note,omitempty"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory,omitempty"`
	Unit           string          `json:"unit"`
	OccurredAt     time.Time       `json:"occurred_at"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToMovementResponse maps the entity.
func ToMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:             m.ID,
		Domain:         string(m.Domain),
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Direction:      string(m.Direction),
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		EmployeeName:   m.EmployeeName,
		Note:           m.Note,
		Category:       m.Category,
		Subcategory:    m.Subcategory,
		Unit:           m.Unit,
		OccurredAt:     m.OccurredAt,
		CreatedAt:      m.CreatedAt,
	}
}
