package coupon

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type CouponResponse struct {
	Code            string  `json:"code"`
	DiscountPercent float64 `json:"discountPercent"`
}

func ToResponse(a Applied) CouponResponse {
	return CouponResponse{
		Code:            a.Code,
		DiscountPercent: a.DiscountPercent.InexactFloat64(),
	}
}
