package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCustomerType(t *testing.T) {
	for _, typ := range []string{"regular", "loyalty", "corporate"} {
		assert.True(t, ValidCustomerType(typ), typ)
	}
	assert.False(t, ValidCustomerType(""))
	assert.False(t, ValidCustomerType("vip"))
}

func TestValidTier(t *testing.T) {
	for _, tier := range []string{"bronze", "silver", "gold"} {
		assert.True(t, ValidTier(tier), tier)
	}
	assert.False(t, ValidTier(""))
	assert.False(t, ValidTier("platinum"))
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "preparing", "ready", "completed", "cancelled"} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("shipped"))
}

func TestValidOrderType(t *testing.T) {
	for _, typ := range []string{"in_store", "online", "delivery"} {
		assert.True(t, ValidOrderType(typ), typ)
	}
	assert.False(t, ValidOrderType(""))
	assert.False(t, ValidOrderType("pickup"))
}
