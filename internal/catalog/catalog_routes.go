package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/categories", handler.ListCategories)
		catalog.GET("/products", handler.ListProducts)
		catalog.GET("/services", handler.ListServices)
		catalog.GET("/services/:id/slots", handler.ServiceSlots)
	}
}
