package repository

import "github.com/hutecki/bankiety-api/internal/domain/entity"

// ProductFilter narrows product listings. Empty fields match everything.
type ProductFilter struct {
	Category    string
	Subcategory string
}

// ProductRepository defines the persistence port for products (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate locks the product row for the enclosing transaction
	// (SELECT FOR UPDATE). Serializes concurrent movements per product.
	GetForUpdate(id string) (*entity.Product, error)
	GetByName(domain entity.Domain, subcategory, name string) (*entity.Product, error)
	List(domain entity.Domain, filter ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// ZeroQuantities bulk-resets current quantity (and cumulative totals when
	// zeroTotals) for every product in the domain. Returns rows updated.
	ZeroQuantities(domain entity.Domain, zeroTotals bool) (int64, error)
}
