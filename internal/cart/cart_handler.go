package cart

import (
	"context"
	"net/http"
	"strconv"

	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) writeError(ctx *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindJSON(ctx *gin.Context, dst any) bool {
	if err := ctx.ShouldBindJSON(dst); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return false
	}
	return true
}

// lineKey reads the :kind and :itemId path params.
func lineKey(ctx *gin.Context) (LineKey, error) {
	kind, err := ParseKind(ctx.Param("kind"))
	if err != nil {
		return LineKey{}, err
	}
	id, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil || id < 1 {
		return LineKey{}, ErrInvalidItemID
	}
	return LineKey{Kind: kind, ItemID: id}, nil
}

// Detail
// GET /cart
func (h *Handler) Detail(ctx *gin.Context) {
	res, err := h.service.Detail(ctx, ctx.GetString(middleware.SessionIDKey))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, res, nil)
}

// Count
// GET /cart/count
func (h *Handler) Count(ctx *gin.Context) {
	count, err := h.service.Count(ctx, ctx.GetString(middleware.SessionIDKey))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, CartCountResponse{Count: count}, nil)
}

// AddItem
// POST /cart/items
func (h *Handler) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if !h.bindJSON(ctx, &req) {
		return
	}
	if err := h.service.AddItem(ctx, ctx.GetString(middleware.SessionIDKey), req); err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, nil, nil)
}

// AddReservation
// POST /cart/reservations
func (h *Handler) AddReservation(ctx *gin.Context) {
	var req AddReservationRequest
	if !h.bindJSON(ctx, &req) {
		return
	}
	if err := h.service.AddReservation(ctx, ctx.GetString(middleware.SessionIDKey), req); err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, nil, nil)
}

// UpdateQty
// PATCH /cart/items/:kind/:itemId
func (h *Handler) UpdateQty(ctx *gin.Context) {
	key, err := lineKey(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	var req UpdateQtyRequest
	if !h.bindJSON(ctx, &req) {
		return
	}
	if err := h.service.UpdateQty(ctx, ctx.GetString(middleware.SessionIDKey), key, req); err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil, nil)
}

func (h *Handler) Increment(ctx *gin.Context) {
	h.withKey(ctx, h.service.Increment)
}

func (h *Handler) Decrement(ctx *gin.Context) {
	h.withKey(ctx, h.service.Decrement)
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	h.withKey(ctx, h.service.DeleteItem)
}

func (h *Handler) withKey(ctx *gin.Context, op func(context.Context, string, LineKey) error) {
	key, err := lineKey(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	if err := op(ctx, ctx.GetString(middleware.SessionIDKey), key); err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil, nil)
}

// Clear
// DELETE /cart
func (h *Handler) Clear(ctx *gin.Context) {
	if err := h.service.Clear(ctx, ctx.GetString(middleware.SessionIDKey)); err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil, nil)
}
