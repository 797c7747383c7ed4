package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellecroissant/backoffice/internal/models"
)

func TestValidPhone(t *testing.T) {
	valid := []string{"123456789", "+33612345678", "+123456789012345", "0612345678"}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), p)
	}

	invalid := []string{"", "12345678", "+", "phone", "06 12 34 56 78", "+3361234567890123"}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), p)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("marie.dubois@example.com"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@domain"))
}

func TestValidateCustomerDefaults(t *testing.T) {
	c := models.Customer{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     "marie@example.com",
		Phone:     "+33612345678",
	}
	require.NoError(t, validateCustomer(&c))
	assert.Equal(t, models.CustomerTypeRegular, c.CustomerType)
}

func TestValidateCustomerRejections(t *testing.T) {
	base := models.Customer{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     "marie@example.com",
		Phone:     "+33612345678",
	}

	tests := []struct {
		name   string
		mutate func(*models.Customer)
		field  string
	}{
		{"missing first name", func(c *models.Customer) { c.FirstName = " " }, "first_name"},
		{"missing last name", func(c *models.Customer) { c.LastName = "" }, "last_name"},
		{"bad email", func(c *models.Customer) { c.Email = "nope" }, "email"},
		{"bad phone", func(c *models.Customer) { c.Phone = "abc" }, "phone"},
		{"unknown type", func(c *models.Customer) { c.CustomerType = "vip" }, "customer_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := validateCustomer(&c)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateOrderDefaults(t *testing.T) {
	o := models.Order{}
	require.NoError(t, validateOrder(&o))
	assert.Equal(t, models.OrderTypeInStore, o.OrderType)
	assert.Equal(t, models.OrderStatusPending, o.Status)
}

func TestValidateOrderItem(t *testing.T) {
	item := models.OrderItem{ProductID: 1, Quantity: 2}
	require.NoError(t, validateOrderItem(&item))

	item.Quantity = 0
	err := validateOrderItem(&item)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Field)

	item.Quantity = -1
	require.Error(t, validateOrderItem(&item))
}

func TestValidateRecipeLine(t *testing.T) {
	line := models.ProductIngredient{ProductID: 1, IngredientID: 2, Quantity: decimal.RequireFromString("0.25")}
	require.NoError(t, validateRecipeLine(&line))

	line.Quantity = decimal.Zero
	err := validateRecipeLine(&line)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Field)
}
