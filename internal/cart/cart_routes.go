package cart

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the cart endpoints. The group must already carry the
// session middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.DELETE("", handler.Clear)
		carts.POST("/items", handler.AddItem)
		carts.POST("/reservations", handler.AddReservation)

		items := carts.Group("/items/:kind/:itemId")
		{
			items.PATCH("", handler.UpdateQty)
			items.POST("/increment", handler.Increment)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.DeleteItem)
		}
	}
}
