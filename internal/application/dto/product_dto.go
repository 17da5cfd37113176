package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// CreateProductRequest input for adding a product to a domain's registry.
// InitialQuantity becomes the baseline and does not write a ledger entry.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Subcategory     string          `json:"subcategory"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	Unit            string          `json:"unit"`
	Description     string          `json:"description"`
}

// UpdateProductRequest partial administrative field edit, bypassing the
// ledger. A non-nil Quantity is a raw override (admin only at the HTTP
// layer) and writes no ledger entry.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Subcategory *string          `json:"subcategory"`
	Unit        *string          `json:"unit"`
	Description *string          `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
}

// DeliverySnapshotResponse denormalized last-delivery data.
type DeliverySnapshotResponse struct {
	Date        time.Time       `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	DeliveredBy string          `json:"delivered_by"`
}

// ProductResponse output for one product.
type ProductResponse struct {
	ID             string                    `json:"id"`
	Domain         string                    `json:"domain"`
	Name           string                    `json:"name"`
	Category       string                    `json:"category"`
	Subcategory    string                    `json:"subcategory,omitempty"`
	Unit           string                    `json:"unit"`
	Description    string                    `json:"description,omitempty"`
	Quantity       decimal.Decimal           `json:"quantity"`
	TotalDelivered decimal.Decimal           `json:"total_delivered"`
	TotalUsed      decimal.Decimal           `json:"total_used"`
	LastDelivery   *DeliverySnapshotResponse `json:"last_delivery,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// ToProductResponse maps the entity.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	resp := &ProductResponse{
		ID:             p.ID,
		Domain:         string(p.Domain),
		Name:           p.Name,
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Unit:           p.Unit,
		Description:    p.Description,
		Quantity:       p.Quantity,
		TotalDelivered: p.TotalDelivered,
		TotalUsed:      p.TotalUsed,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.LastDelivery != nil {
		resp.LastDelivery = &DeliverySnapshotResponse{
			Date:        p.LastDelivery.Date,
			Quantity:    p.LastDelivery.Quantity,
			DeliveredBy: p.LastDelivery.DeliveredBy,
		}
	}
	return resp
}
