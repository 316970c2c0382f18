package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogController "github.com/craftkart/marketplace-api/controllers/catalog"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/products")
	{
		group.GET("/explore", catalogController.ExploreProducts(db))
		group.GET("/related", catalogController.GetRelatedProducts(db))
		group.GET("/sellers", catalogController.GetSellers(db))
		group.GET("/seller/:sellerId", catalogController.GetSellerStorefront(db))
		group.GET("/:id", catalogController.GetProductByID(db))
	}
}
