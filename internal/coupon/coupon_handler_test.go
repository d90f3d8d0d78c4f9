package coupon_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/coupon"
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCouponService struct {
	ApplyFn   func(ctx context.Context, sessionID, code string) (coupon.Applied, error)
	CurrentFn func(ctx context.Context, sessionID string) (*coupon.Applied, error)
	RemoveFn  func(ctx context.Context, sessionID string) (bool, error)
}

func (f *fakeCouponService) Apply(ctx context.Context, sessionID, code string) (coupon.Applied, error) {
	return f.ApplyFn(ctx, sessionID, code)
}
func (f *fakeCouponService) Current(ctx context.Context, sessionID string) (*coupon.Applied, error) {
	return f.CurrentFn(ctx, sessionID)
}
func (f *fakeCouponService) Remove(ctx context.Context, sessionID string) (bool, error) {
	return f.RemoveFn(ctx, sessionID)
}
func (f *fakeCouponService) Clear(ctx context.Context, sessionID string) error {
	_, err := f.RemoveFn(ctx, sessionID)
	return err
}

func setupRouter(svc coupon.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, "sess-1")
		c.Next()
	})
	coupon.RegisterRoutes(r.Group("/api/v1"), coupon.NewHandler(svc))
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestCouponHandler_Apply(t *testing.T) {
	svc := &fakeCouponService{
		ApplyFn: func(ctx context.Context, sid, code string) (coupon.Applied, error) {
			assert.Equal(t, "sess-1", sid)
			return coupon.NewValidator().Validate(code)
		},
	}
	r := setupRouter(svc)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/coupon", strings.NewReader(`{"code":"camsa10"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "CAMSA10 aplicado (10% de descuento)", env.Message)
		assert.JSONEq(t, `{"code":"CAMSA10","discountPercent":10}`, string(env.Data))
	})

	t.Run("missing_vs_invalid", func(t *testing.T) {
		cases := map[string]struct {
			status int
			msg    string
		}{
			`{"code":"  "}`:     {http.StatusBadRequest, "Ingresa un código"},
			`{"code":"BOGUS1"}`: {http.StatusNotFound, "Código inválido"},
		}
		for body, want := range cases {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/coupon", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, want.status, w.Code, body)
			var env envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, want.msg, env.Error.Message)
		}
	})
}

func TestCouponHandler_CurrentAndRemove(t *testing.T) {
	var applied *coupon.Applied
	svc := &fakeCouponService{
		CurrentFn: func(ctx context.Context, sid string) (*coupon.Applied, error) {
			return applied, nil
		},
		RemoveFn: func(ctx context.Context, sid string) (bool, error) {
			had := applied != nil
			applied = nil
			return had, nil
		},
	}
	r := setupRouter(svc)

	get := func() envelope {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/coupon", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		return env
	}

	assert.Equal(t, "null", string(get().Data))

	applied = &coupon.Applied{Code: "CAMSA20", DiscountPercent: decimal.NewFromInt(20)}
	assert.JSONEq(t, `{"code":"CAMSA20","discountPercent":20}`, string(get().Data))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/coupon", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", string(get().Data))
}
