package checkout

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	checkouts := r.Group("/checkout")
	{
		checkouts.GET("/summary", handler.Summary)
		checkouts.POST("", handler.Complete)
	}
}
