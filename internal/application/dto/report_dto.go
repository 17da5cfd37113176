package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductTurnoverDTO one product's delivered/used/turnover sums.
type ProductTurnoverDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Unit        string          `json:"unit"`
	Delivered   decimal.Decimal `json:"delivered"`
	Used        decimal.Decimal `json:"used"`
	Turnover    decimal.Decimal `json:"turnover"`
	Current     decimal.Decimal `json:"current"`
}

// DomainTurnoverDTO sums for one domain.
type DomainTurnoverDTO struct {
	Domain   string               `json:"domain"`
	Products []ProductTurnoverDTO `json:"products"`
}

// TurnoverReportResponse the full report over a date window.
type TurnoverReportResponse struct {
	From    time.Time           `json:"from"`
	To      time.Time           `json:"to"`
	Domains []DomainTurnoverDTO `json:"domains"`
}
