package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	sellerController "github.com/craftkart/marketplace-api/controllers/seller"
	"github.com/craftkart/marketplace-api/middleware"
)

// SetupSellerRoutes registers the seller dashboard endpoints.
func SetupSellerRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/seller")
	group.Use(middleware.Authenticate(db), middleware.RequireSeller())
	{
		group.POST("/product/upload", sellerController.CreateProduct(db))
		group.GET("/products", sellerController.ListProducts(db))
		group.GET("/products/export", sellerController.ExportProducts(db))
		group.GET("/product/:id", sellerController.GetProduct(db))
		group.PUT("/product/:id", sellerController.UpdateProduct(db))
		group.DELETE("/product/:id", sellerController.DeleteProduct(db))

		group.GET("/orders", sellerController.GetOrders(db))
		group.PUT("/orders/:orderId/status", sellerController.UpdateOrderStatus(db))
	}
}
