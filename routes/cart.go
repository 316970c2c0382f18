package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderController "github.com/craftkart/marketplace-api/controllers/order"
	"github.com/craftkart/marketplace-api/middleware"
)

// SetupCartRoutes registers the client-held-cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, feed *orderController.Feed) {
	group := r.Group("/cart")
	group.Use(middleware.Authenticate(db))
	{
		group.POST("/add", orderController.AddToCart(db))
		group.POST("/checkout", orderController.CheckoutHandler(db, feed))
	}
}
