package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNeedsRestock(t *testing.T) {
	tests := []struct {
		name    string
		current string
		min     string
		want    bool
	}{
		{"below minimum", "2.00", "5.00", true},
		{"exactly at minimum", "5.00", "5.00", true},
		{"just above minimum", "5.01", "5.00", false},
		{"well stocked", "100.00", "5.00", false},
		{"zero stock", "0.00", "0.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := Ingredient{
				CurrentStock: decimal.RequireFromString(tt.current),
				MinStock:     decimal.RequireFromString(tt.min),
			}
			assert.Equal(t, tt.want, i.NeedsRestock())
		})
	}
}

func TestValidUnit(t *testing.T) {
	for _, unit := range []string{"kg", "g", "l", "ml", "pcs"} {
		assert.True(t, ValidUnit(unit), unit)
	}
	assert.False(t, ValidUnit(""))
	assert.False(t, ValidUnit("oz"))
	assert.False(t, ValidUnit("KG"))
}
