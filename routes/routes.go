package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderController "github.com/craftkart/marketplace-api/controllers/order"
)

// SetupRoutes wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	feed := orderController.NewFeed()

	SetupAuthRoutes(r, db)
	SetupCatalogRoutes(r, db)
	SetupSellerRoutes(r, db)
	SetupCartRoutes(r, db, feed)
	SetupOrderRoutes(r, db, feed)
	SetupAdminRoutes(r, db)
}
