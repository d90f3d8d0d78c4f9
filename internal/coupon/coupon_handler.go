package coupon

import (
	"fmt"
	"net/http"

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

// AppliedMessage is the confirmation shown after a coupon is accepted.
func AppliedMessage(a Applied) string {
	return fmt.Sprintf("%s aplicado (%s%% de descuento)", a.Code, a.DiscountPercent.String())
}

// Apply
// POST /coupon
func (h *Handler) Apply(ctx *gin.Context) {
	var req ApplyCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	applied, err := h.service.Apply(ctx, ctx.GetString(middleware.SessionIDKey), req.Code)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, ToResponse(applied), &response.Meta{Message: AppliedMessage(applied)})
}

// Current
// GET /coupon
func (h *Handler) Current(ctx *gin.Context) {
	applied, err := h.service.Current(ctx, ctx.GetString(middleware.SessionIDKey))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	if applied == nil {
		response.Success(ctx, http.StatusOK, nil, nil)
		return
	}
	response.Success(ctx, http.StatusOK, ToResponse(*applied), nil)
}

// Remove
// DELETE /coupon
func (h *Handler) Remove(ctx *gin.Context) {
	if _, err := h.service.Remove(ctx, ctx.GetString(middleware.SessionIDKey)); err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, nil, nil)
}
