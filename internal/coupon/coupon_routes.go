package coupon

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	coupons := r.Group("/coupon")
	{
		coupons.GET("", handler.Current)
		coupons.POST("", handler.Apply)
		coupons.DELETE("", handler.Remove)
	}
}
