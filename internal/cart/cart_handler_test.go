package cart_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	DetailFn         func(ctx context.Context, sessionID string) (cart.CartDetailResponse, error)
	CountFn          func(ctx context.Context, sessionID string) (int, error)
	ItemsFn          func(ctx context.Context, sessionID string) ([]cart.ResolvedLineItem, error)
	AddItemFn        func(ctx context.Context, sessionID string, req cart.AddItemRequest) error
	AddReservationFn func(ctx context.Context, sessionID string, req cart.AddReservationRequest) error
	UpdateQtyFn      func(ctx context.Context, sessionID string, key cart.LineKey, req cart.UpdateQtyRequest) error
	IncrementFn      func(ctx context.Context, sessionID string, key cart.LineKey) error
	DecrementFn      func(ctx context.Context, sessionID string, key cart.LineKey) error
	DeleteItemFn     func(ctx context.Context, sessionID string, key cart.LineKey) error
	ClearFn          func(ctx context.Context, sessionID string) error
}

func (f *fakeCartService) Detail(ctx context.Context, sessionID string) (cart.CartDetailResponse, error) {
	return f.DetailFn(ctx, sessionID)
}
func (f *fakeCartService) Count(ctx context.Context, sessionID string) (int, error) {
	return f.CountFn(ctx, sessionID)
}
func (f *fakeCartService) Items(ctx context.Context, sessionID string) ([]cart.ResolvedLineItem, error) {
	return f.ItemsFn(ctx, sessionID)
}
func (f *fakeCartService) AddItem(ctx context.Context, sessionID string, req cart.AddItemRequest) error {
	if f.AddItemFn == nil {
		return nil
	}
	return f.AddItemFn(ctx, sessionID, req)
}
func (f *fakeCartService) AddReservation(ctx context.Context, sessionID string, req cart.AddReservationRequest) error {
	return f.AddReservationFn(ctx, sessionID, req)
}
func (f *fakeCartService) UpdateQty(ctx context.Context, sessionID string, key cart.LineKey, req cart.UpdateQtyRequest) error {
	return f.UpdateQtyFn(ctx, sessionID, key, req)
}
func (f *fakeCartService) Increment(ctx context.Context, sessionID string, key cart.LineKey) error {
	return f.IncrementFn(ctx, sessionID, key)
}
func (f *fakeCartService) Decrement(ctx context.Context, sessionID string, key cart.LineKey) error {
	return f.DecrementFn(ctx, sessionID, key)
}
func (f *fakeCartService) DeleteItem(ctx context.Context, sessionID string, key cart.LineKey) error {
	return f.DeleteItemFn(ctx, sessionID, key)
}
func (f *fakeCartService) Clear(ctx context.Context, sessionID string) error {
	return f.ClearFn(ctx, sessionID)
}

// ==================== HELPER FUNCTIONS ====================

const testSession = "sess-123"

func setupTestRouter(svc cart.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, testSession)
		c.Next()
	})
	cart.RegisterRoutes(r.Group("/api/v1"), cart.NewHandler(svc))
	return r
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// ==================== TEST CASES ====================

func TestCartHandler_Detail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCartService{
			DetailFn: func(ctx context.Context, sid string) (cart.CartDetailResponse, error) {
				assert.Equal(t, testSession, sid)
				return cart.CartDetailResponse{
					Items:      []cart.CartItemResponse{{ID: 3, Kind: "product", Name: "Gorra", Quantity: 2}},
					TotalItems: 2,
				}, nil
			},
		}

		w := perform(setupTestRouter(svc), http.MethodGet, "/api/v1/cart", "")
		assert.Equal(t, http.StatusOK, w.Code)

		env := decode(t, w)
		assert.True(t, env.Success)
		var res cart.CartDetailResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, 2, res.TotalItems)
	})
}

func TestCartHandler_Count(t *testing.T) {
	svc := &fakeCartService{
		CountFn: func(ctx context.Context, sid string) (int, error) {
			return 5, nil
		},
	}

	w := perform(setupTestRouter(svc), http.MethodGet, "/api/v1/cart/count", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":5}`, string(decode(t, w).Data))
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got cart.AddItemRequest
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, sid string, req cart.AddItemRequest) error {
				got = req
				return nil
			},
		}

		w := perform(setupTestRouter(svc), http.MethodPost, "/api/v1/cart/items", `{"itemId":3,"kind":"product","qty":2}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cart.AddItemRequest{ItemID: 3, Kind: "product", Qty: 2}, got)
	})

	t.Run("out_of_stock", func(t *testing.T) {
		svc := &fakeCartService{
			AddItemFn: func(ctx context.Context, sid string, req cart.AddItemRequest) error {
				return cart.ErrOutOfStock
			},
		}

		w := perform(setupTestRouter(svc), http.MethodPost, "/api/v1/cart/items", `{"itemId":3,"kind":"product"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "OUT_OF_STOCK", decode(t, w).Error.Code)
	})

	t.Run("bad_json", func(t *testing.T) {
		w := perform(setupTestRouter(&fakeCartService{}), http.MethodPost, "/api/v1/cart/items", `{"itemId":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_AddReservation(t *testing.T) {
	svc := &fakeCartService{
		AddReservationFn: func(ctx context.Context, sid string, req cart.AddReservationRequest) error {
			if req.TimeSlot != "09:00" {
				return cart.ErrSlotUnavailable
			}
			return nil
		},
	}
	r := setupTestRouter(svc)

	w := perform(r, http.MethodPost, "/api/v1/cart/reservations", `{"serviceId":2,"date":"2025-06-10","timeSlot":"09:00"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodPost, "/api/v1/cart/reservations", `{"serviceId":2,"date":"2025-06-10","timeSlot":"23:00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, w).Error.Code)
}

func TestCartHandler_LineOperations(t *testing.T) {
	var calls []string
	record := func(op string) func(ctx context.Context, sid string, key cart.LineKey) error {
		return func(ctx context.Context, sid string, key cart.LineKey) error {
			calls = append(calls, op+" "+key.String())
			return nil
		}
	}
	svc := &fakeCartService{
		IncrementFn:  record("inc"),
		DecrementFn:  record("dec"),
		DeleteItemFn: record("del"),
		UpdateQtyFn: func(ctx context.Context, sid string, key cart.LineKey, req cart.UpdateQtyRequest) error {
			require.NotNil(t, req.Qty)
			calls = append(calls, "set "+key.String())
			return nil
		},
	}
	r := setupTestRouter(svc)

	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/api/v1/cart/items/product/3/increment", "").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPost, "/api/v1/cart/items/service/1/decrement", "").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPatch, "/api/v1/cart/items/product/3", `{"qty":4}`).Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodDelete, "/api/v1/cart/items/service/1", "").Code)

	assert.Equal(t, []string{"inc product:3", "dec service:1", "set product:3", "del service:1"}, calls)

	t.Run("bad_path_params", func(t *testing.T) {
		w := perform(r, http.MethodDelete, "/api/v1/cart/items/bundle/1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = perform(r, http.MethodDelete, "/api/v1/cart/items/product/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_Clear(t *testing.T) {
	cleared := false
	svc := &fakeCartService{
		ClearFn: func(ctx context.Context, sid string) error {
			cleared = true
			return nil
		},
	}

	w := perform(setupTestRouter(svc), http.MethodDelete, "/api/v1/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cleared)
}
