package coupon_test

import (
	"testing"

	"go-storefront-api/internal/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := coupon.NewValidator()

	t.Run("normalizes_input", func(t *testing.T) {
		for _, in := range []string{"CAMSA10", "camsa10", "  CaMsA10\t"} {
			got, err := v.Validate(in)
			require.NoError(t, err, in)
			assert.Equal(t, "CAMSA10", got.Code)
			assert.True(t, got.DiscountPercent.Equal(decimal.NewFromInt(10)))
		}
	})

	t.Run("second_seed", func(t *testing.T) {
		got, err := v.Validate("camsa20")
		require.NoError(t, err)
		assert.True(t, got.DiscountPercent.Equal(decimal.NewFromInt(20)))
	})

	t.Run("missing_code", func(t *testing.T) {
		for _, in := range []string{"", "   "} {
			_, err := v.Validate(in)
			assert.ErrorIs(t, err, coupon.ErrMissingCode)
		}
	})

	t.Run("unknown_code", func(t *testing.T) {
		_, err := v.Validate("CAMSA30")
		assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
	})

	t.Run("canonical_casing_from_table", func(t *testing.T) {
		custom := coupon.NewValidator(coupon.Applied{Code: "Summer5", DiscountPercent: decimal.NewFromInt(5)})
		got, err := custom.Validate("summer5")
		require.NoError(t, err)
		assert.Equal(t, "Summer5", got.Code)

		_, err = custom.Validate("CAMSA10")
		assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
	})
}

func TestAppliedMessage(t *testing.T) {
	msg := coupon.AppliedMessage(coupon.Applied{Code: "CAMSA20", DiscountPercent: decimal.NewFromInt(20)})
	assert.Equal(t, "CAMSA20 aplicado (20% de descuento)", msg)
}
