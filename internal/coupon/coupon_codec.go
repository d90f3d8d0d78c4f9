package coupon

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var errForeignRecord = errors.New("coupon record has no code or numeric discountPercent")

type record struct {
	Code            string          `json:"code"`
	DiscountPercent json.RawMessage `json:"discountPercent"`
}

func encode(a Applied) ([]byte, error) {
	return json.Marshal(record{
		Code:            a.Code,
		DiscountPercent: json.RawMessage(a.DiscountPercent.String()),
	})
}

// decode accepts only a record with a code and a JSON number discount.
func decode(data []byte) (Applied, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Applied{}, err
	}
	raw := bytes.TrimSpace(rec.DiscountPercent)
	if rec.Code == "" || len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return Applied{}, errForeignRecord
	}
	pct, err := decimal.NewFromString(string(raw))
	if err != nil {
		return Applied{}, errForeignRecord
	}
	return Applied{Code: rec.Code, DiscountPercent: pct}, nil
}
