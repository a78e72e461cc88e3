package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pcland/storefront-api/types"
)

func TestComputeTotals(t *testing.T) {
	lines := []types.CartLine{
		{Price: 100000, Quantity: 2, Discount: 10},
		{Price: 50000, Quantity: 1, Discount: 0},
	}

	totals := ComputeTotals(lines)
	assert.Equal(t, "250000", totals.Total.String())
	assert.Equal(t, "20000", totals.Discount.String())
	assert.Equal(t, "230000", totals.Net.String())
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Discount.IsZero())
	assert.True(t, totals.Net.IsZero())
}

func TestComputeTotalsFractionalDiscount(t *testing.T) {
	// 12.5% of 80000 is an exact 10000; no float drift allowed
	lines := []types.CartLine{
		{Price: 80000, Quantity: 1, Discount: 12.5},
	}

	totals := ComputeTotals(lines)
	assert.Equal(t, "10000", totals.Discount.String())
	assert.Equal(t, "70000", totals.Net.String())
}

func TestAfterDiscount(t *testing.T) {
	assert.Equal(t, "90000", AfterDiscount(100000, 10).String())
	assert.Equal(t, "100000", AfterDiscount(100000, 0).String())
	assert.Equal(t, "0", AfterDiscount(100000, 100).String())
}
