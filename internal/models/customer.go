package models

import (
	"time"
)

// Customer types
const (
	CustomerTypeRegular   = "regular"
	CustomerTypeLoyalty   = "loyalty"
	CustomerTypeCorporate = "corporate"
)

// Loyalty tiers
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Customer represents a registered customer of the bakery
type Customer struct {
	ID               int64           `json:"id" db:"id"`
	FirstName        string          `json:"first_name" db:"first_name"`
	LastName         string          `json:"last_name" db:"last_name"`
	Email            string          `json:"email" db:"email"`
	Phone            string          `json:"phone" db:"phone"`
	CustomerType     string          `json:"customer_type" db:"customer_type"`
	RegistrationDate time.Time       `json:"registration_date" db:"registration_date"`
	BirthDate        *time.Time      `json:"birth_date" db:"birth_date"`
	Address          string          `json:"address" db:"address"`
	IsActive         bool            `json:"is_active" db:"is_active"`
	Loyalty          *LoyaltyProgram `json:"loyalty,omitempty" db:"-"`
}

// LoyaltyProgram is the loyalty account attached to at most one customer.
// It is owned by the customer and removed with it.
type LoyaltyProgram struct {
	ID         int64     `json:"-" db:"id"`
	CustomerID int64     `json:"-" db:"customer_id"`
	Points     int       `json:"points" db:"points"`
	Tier       string    `json:"tier" db:"tier"`
	JoinedDate time.Time `json:"joined_date" db:"joined_date"`
}

// ValidCustomerType reports whether t is one of the closed customer types.
func ValidCustomerType(t string) bool {
	switch t {
	case CustomerTypeRegular, CustomerTypeLoyalty, CustomerTypeCorporate:
		return true
	}
	return false
}

// ValidTier reports whether t is one of the closed loyalty tiers.
func ValidTier(t string) bool {
	switch t {
	case TierBronze, TierSilver, TierGold:
		return true
	}
	return false
}
