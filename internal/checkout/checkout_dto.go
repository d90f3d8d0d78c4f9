package checkout

import (
	"time"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/coupon"
	"go-storefront-api/internal/pricing"
)

// Summary is a read-only quote of the session's cart.
type Summary struct {
	Items      []cart.ResolvedLineItem
	TotalItems int
	Coupon     *coupon.Applied
	Totals     pricing.Totals
}

// Result is returned once checkout has cleared the session.
type Result struct {
	Success     bool
	CompletedAt time.Time
	Totals      pricing.Totals
	Coupon      *coupon.Applied
}

type SummaryResponse struct {
	Items      []cart.CartItemResponse `json:"items"`
	TotalItems int                     `json:"totalItems"`
	Coupon     *coupon.CouponResponse  `json:"coupon"`
	Totals     pricing.TotalsResponse  `json:"totals"`
}

type ResultResponse struct {
	Success     bool                   `json:"success"`
	CompletedAt string                 `json:"completedAt"`
	Totals      pricing.TotalsResponse `json:"totals"`
}

func toCouponResponse(a *coupon.Applied) *coupon.CouponResponse {
	if a == nil {
		return nil
	}
	res := coupon.ToResponse(*a)
	return &res
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		Items:      cart.ToItemResponses(s.Items),
		TotalItems: s.TotalItems,
		Coupon:     toCouponResponse(s.Coupon),
		Totals:     s.Totals.Response(),
	}
}

func ToResultResponse(r Result) ResultResponse {
	return ResultResponse{
		Success:     r.Success,
		CompletedAt: r.CompletedAt.Format(time.RFC3339),
		Totals:      r.Totals.Response(),
	}
}
