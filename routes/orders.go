package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderController "github.com/craftkart/marketplace-api/controllers/order"
	"github.com/craftkart/marketplace-api/middleware"
)

// SetupOrderRoutes registers the customer order endpoints and the live feed.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, feed *orderController.Feed) {
	group := r.Group("/orders")
	group.Use(middleware.Authenticate(db))
	{
		group.GET("", orderController.GetOrders(db))
		group.GET("/ws", feed.Handler)
		group.DELETE("/:id/cancel", orderController.CancelOrder(db))
	}
}
