// Package warehouse holds the per-domain configuration table. The three
// warehouse areas (alkohole, naciągi, suchy) share one product/ledger model
// and differ only in the knobs collected here.
package warehouse

import (
	"fmt"

	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

// Config describes one warehouse domain.
type Config struct {
	Domain        entity.Domain
	Categories    []string
	Subcategories []string // empty: the domain has no subcategory level
	Units         []string
	DefaultUnit   string

	// TracksTotals: maintain cumulative delivered/used counters on the
	// product record. Naciągi derives usage from the ledger instead.
	TracksTotals bool

	// ResetClearsTotals: the bulk reset wipes the cumulative counters along
	// with the quantities. Suchy keeps its counters as an all-time record.
	ResetClearsTotals bool

	// NameUniquePerSubcategory: product names are unique within
	// (domain, subcategory) instead of within the whole domain.
	NameUniquePerSubcategory bool

	// ExtraDirections beyond dostawa/uzycie accepted by the ledger.
	ExtraDirections []entity.Direction
}

var catalog = []Config{
	{
		Domain:      entity.DomainAlcohol,
		Categories:  []string{"wino_biale", "wino_czerwone", "whiskey", "inne"},
		Units:       []string{"szt"},
		DefaultUnit: "szt",

		TracksTotals:      true,
		ResetClearsTotals: true,
		ExtraDirections:   []entity.Direction{entity.DirectionCorrection, entity.DirectionLoss},
	},
	{
		Domain:        entity.DomainNaciagi,
		Categories:    []string{"napoje", "mleko"},
		Subcategories: []string{"pepsi", "7up", "mirinda", "softy", "paliwka", "mleko_zwykle", "mleko_bl"},
		Units:         []string{"szt", "l", "ml"},
		DefaultUnit:   "szt",

		NameUniquePerSubcategory: true,
	},
	{
		Domain:        entity.DomainSuchy,
		Categories:    []string{"suchy"},
		Subcategories: []string{"cukier", "kawa", "maka", "sol", "pieprz", "przyprawy"},
		Units:         []string{"kg", "g", "szt", "opakowanie"},
		DefaultUnit:   "kg",

		TracksTotals:             true,
		NameUniquePerSubcategory: true,
	},
}

// Lookup returns the configuration for a domain.
func Lookup(d entity.Domain) (Config, error) {
	for _, c := range catalog {
		if c.Domain == d {
			return c, nil
		}
	}
	return Config{}, fmt.Errorf("%w: unknown domain %q", domain.ErrValidation, d)
}

// All returns every domain configuration, in catalog order.
func All() []Config {
	out := make([]Config, len(catalog))
	copy(out, catalog)
	return out
}

// ParseScope resolves a scope parameter ("alkohole", "naciagi", "suchy" or
// "all"; empty means all) into the selected domain configurations.
func ParseScope(scope string) ([]Config, error) {
	if scope == "" || scope == "all" {
		return All(), nil
	}
	cfg, err := Lookup(entity.Domain(scope))
	if err != nil {
		return nil, fmt.Errorf("%w: unknown scope %q", domain.ErrValidation, scope)
	}
	return []Config{cfg}, nil
}

// ValidCategory reports whether category belongs to the domain's set.
func (c Config) ValidCategory(category string) bool {
	for _, v := range c.Categories {
		if v == category {
			return true
		}
	}
	return false
}

// ValidSubcategory reports whether subcategory is acceptable. Domains
// without a subcategory level accept only the empty string.
func (c Config) ValidSubcategory(subcategory string) bool {
	if len(c.Subcategories) == 0 {
		return subcategory == ""
	}
	for _, v := range c.Subcategories {
		if v == subcategory {
			return true
		}
	}
	return false
}

// ValidUnit reports whether unit belongs to the domain's set.
func (c Config) ValidUnit(unit string) bool {
	for _, v := range c.Units {
		if v == unit {
			return true
		}
	}
	return false
}

// AllowsDirection reports whether the ledger accepts the direction for this
// domain. Delivery and usage are always allowed.
func (c Config) AllowsDirection(d entity.Direction) bool {
	if d == entity.DirectionDelivery || d == entity.DirectionUsage {
		return true
	}
	for _, v := range c.ExtraDirections {
		if v == d {
			return true
		}
	}
	return false
}
