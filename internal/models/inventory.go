package models

import (
	"github.com/shopspring/decimal"
)

// Measurement units
const (
	UnitKilogram   = "kg"
	UnitGram       = "g"
	UnitLiter      = "l"
	UnitMilliliter = "ml"
	UnitPieces     = "pcs"
)

// Ingredient represents a raw material tracked in inventory
type Ingredient struct {
	ID           int64           `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Unit         string          `json:"unit" db:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock" db:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock" db:"min_stock"`
	MaxStock     decimal.Decimal `json:"max_stock" db:"max_stock"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit" db:"cost_per_unit"`
}

// NeedsRestock reports whether the current stock has dropped to or below
// the minimum. Computed on read, never stored.
func (i Ingredient) NeedsRestock() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinStock)
}

// ProductIngredient is one recipe line: how much of one ingredient one
// product consumes. At most one line per (product, ingredient) pair.
type ProductIngredient struct {
	ID           int64           `json:"id" db:"id"`
	ProductID    int64           `json:"product_id" db:"product_id"`
	IngredientID int64           `json:"ingredient_id" db:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity" db:"quantity"`
}

// ValidUnit reports whether u is one of the closed measurement units.
func ValidUnit(u string) bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPieces:
		return true
	}
	return false
}
