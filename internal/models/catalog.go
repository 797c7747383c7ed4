package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category represents a product category, flat with no hierarchy
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Product represents a sellable item in the catalog
type Product struct {
	ID              int64           `json:"id" db:"id"`
	Name            string          `json:"name" db:"name"`
	Description     string          `json:"description" db:"description"`
	CategoryID      int64           `json:"category_id" db:"category_id"`
	Price           decimal.Decimal `json:"price" db:"price"`
	Cost            decimal.Decimal `json:"cost" db:"cost"`
	Image           string          `json:"image" db:"image"`
	IsAvailable     bool            `json:"is_available" db:"is_available"`
	PreparationTime int             `json:"preparation_time" db:"preparation_time"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
