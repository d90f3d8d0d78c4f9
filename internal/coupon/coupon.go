package coupon

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Applied is a coupon accepted for a session.
type Applied struct {
	Code            string
	DiscountPercent decimal.Decimal
}

func (a Applied) Equal(b Applied) bool {
	return a.Code == b.Code && a.DiscountPercent.Equal(b.DiscountPercent)
}

// DefaultCoupons is the storefront coupon table.
func DefaultCoupons() []Applied {
	return []Applied{
		{Code: "CAMSA10", DiscountPercent: decimal.NewFromInt(10)},
		{Code: "CAMSA20", DiscountPercent: decimal.NewFromInt(20)},
	}
}

// Validator maps user input to a coupon from a fixed table.
type Validator struct {
	table map[string]Applied
}

// NewValidator builds a Validator over coupons, or over DefaultCoupons when
// none are given.
func NewValidator(coupons ...Applied) *Validator {
	if len(coupons) == 0 {
		coupons = DefaultCoupons()
	}
	table := make(map[string]Applied, len(coupons))
	for _, c := range coupons {
		table[normalize(c.Code)] = c
	}
	return &Validator{table: table}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate trims and upper-cases code before the lookup. The returned coupon
// carries the table's own spelling of the code.
func (v *Validator) Validate(code string) (Applied, error) {
	key := normalize(code)
	if key == "" {
		return Applied{}, ErrMissingCode
	}
	c, ok := v.table[key]
	if !ok {
		return Applied{}, ErrCouponNotFound
	}
	return c, nil
}
