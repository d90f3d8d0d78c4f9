// Package pricing derives cart totals from resolved line items and the
// applied coupon. Everything here is pure.
package pricing

import (
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/coupon"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.RequireFromString("0.5")
)

type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal is unitPrice × quantity with no rounding.
func LineTotal(item cart.ResolvedLineItem) decimal.Decimal {
	return item.LineTotal()
}

// ComputeTotals sums the lines exactly and rounds only the discount, half-up
// to cents. The total never goes below zero.
func ComputeTotals(items []cart.ResolvedLineItem, applied *coupon.Applied) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item))
	}

	discount := decimal.Zero
	if applied != nil {
		discount = roundHalfUp(subtotal.Mul(applied.DiscountPercent).Div(hundred))
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Totals{Subtotal: subtotal, Discount: discount, Total: total}
}

// roundHalfUp rounds to cents with ties going toward positive infinity.
func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Mul(hundred).Add(half).Floor().Div(hundred)
}

type TotalsResponse struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
}

func (t Totals) Response() TotalsResponse {
	return TotalsResponse{
		Subtotal: t.Subtotal.StringFixed(2),
		Discount: t.Discount.StringFixed(2),
		Total:    t.Total.StringFixed(2),
	}
}
