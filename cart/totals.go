package cart

import (
	"github.com/shopspring/decimal"

	"github.com/pcland/storefront-api/types"
)

var oneHundred = decimal.NewFromInt(100)

// Totals aggregates the monetary amounts for a reconciled cart
type Totals struct {
	// Total is the sum of unit price times quantity over all lines
	Total decimal.Decimal `json:"total"`
	// Discount is the summed discount amount
	// (unit price times quantity times discount percent over 100)
	Discount decimal.Decimal `json:"totalDiscount"`
	// Net is the payable amount, Total minus Discount
	Net decimal.Decimal `json:"netPayable"`
}

// ComputeTotals computes the monetary aggregates over cart lines.
// Discount percents are expressed 0-100.
func ComputeTotals(lines []types.CartLine) Totals {
	total := decimal.Zero
	discount := decimal.Zero

	for _, line := range lines {
		amount := decimal.NewFromInt(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(amount)
		discount = discount.Add(amount.Mul(decimal.NewFromFloat(line.Discount)).Div(oneHundred))
	}

	return Totals{
		Total:    total,
		Discount: discount,
		Net:      total.Sub(discount),
	}
}

// AfterDiscount computes the discounted unit price for a single line
func AfterDiscount(price int64, discountPercent float64) decimal.Decimal {
	unit := decimal.NewFromInt(price)
	return unit.Sub(unit.Mul(decimal.NewFromFloat(discountPercent)).Div(oneHundred))
}
