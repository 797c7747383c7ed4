package store

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/bellecroissant/backoffice/internal/models"
)

var validate = validator.New()

// PhonePattern matches digits with an optional leading +, 9 to 15 digits.
var PhonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ValidEmail reports whether s is an RFC-shaped email address.
func ValidEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// ValidPhone reports whether s is an acceptable phone number.
func ValidPhone(s string) bool {
	return PhonePattern.MatchString(s)
}

func validateCustomer(c *models.Customer) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return &ValidationError{Field: "first_name", Message: "is required"}
	}
	if strings.TrimSpace(c.LastName) == "" {
		return &ValidationError{Field: "last_name", Message: "is required"}
	}
	if !ValidEmail(c.Email) {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	if !ValidPhone(c.Phone) {
		return &ValidationError{Field: "phone", Message: "must be digits with an optional leading +, 9 to 15 digits"}
	}
	if c.CustomerType == "" {
		c.CustomerType = models.CustomerTypeRegular
	}
	if !models.ValidCustomerType(c.CustomerType) {
		return &ValidationError{Field: "customer_type", Message: "must be one of regular, loyalty, corporate"}
	}
	return nil
}

func validateLoyalty(l *models.LoyaltyProgram) error {
	if l.Tier == "" {
		l.Tier = models.TierBronze
	}
	if !models.ValidTier(l.Tier) {
		return &ValidationError{Field: "tier", Message: "must be one of bronze, silver, gold"}
	}
	return nil
}

func validateCategory(c *models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

func validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if p.CategoryID == 0 {
		return &ValidationError{Field: "category_id", Message: "is required"}
	}
	if p.PreparationTime < 0 {
		return &ValidationError{Field: "preparation_time", Message: "must not be negative"}
	}
	return nil
}

func validateIngredient(i *models.Ingredient) error {
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !models.ValidUnit(i.Unit) {
		return &ValidationError{Field: "unit", Message: "must be one of kg, g, l, ml, pcs"}
	}
	return nil
}

func validateRecipeLine(r *models.ProductIngredient) error {
	if r.ProductID == 0 {
		return &ValidationError{Field: "product_id", Message: "is required"}
	}
	if r.IngredientID == 0 {
		return &ValidationError{Field: "ingredient_id", Message: "is required"}
	}
	if r.Quantity.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: "quantity", Message: "must be positive"}
	}
	return nil
}

func validateOrder(o *models.Order) error {
	if o.OrderType == "" {
		o.OrderType = models.OrderTypeInStore
	}
	if !models.ValidOrderType(o.OrderType) {
		return &ValidationError{Field: "order_type", Message: "must be one of in_store, online, delivery"}
	}
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(o.Status) {
		return &ValidationError{Field: "status", Message: "must be one of pending, preparing, ready, completed, cancelled"}
	}
	return nil
}

func validateOrderItem(i *models.OrderItem) error {
	if i.ProductID == 0 {
		return &ValidationError{Field: "product_id", Message: "is required"}
	}
	if i.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	}
	return nil
}
