package checkout

import (
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

// Summary
// GET /checkout/summary
func (h *Handler) Summary(ctx *gin.Context) {
	summary, err := h.service.Summary(ctx, ctx.GetString(middleware.SessionIDKey))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, ToSummaryResponse(summary), nil)
}

// Complete
// POST /checkout
func (h *Handler) Complete(ctx *gin.Context) {
	res, err := h.service.Complete(ctx, ctx.GetString(middleware.SessionIDKey))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, ToResultResponse(res), &response.Meta{Message: "Pedido confirmado"})
}
