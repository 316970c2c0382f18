package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/craftkart/marketplace-api/controllers/admin"
	"github.com/craftkart/marketplace-api/middleware"
)

// SetupAdminRoutes registers the admin listings.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/admin")
	group.Use(middleware.Authenticate(db), middleware.RequireAdmin())
	{
		group.GET("/users", adminController.GetAllUsers(db))
		group.GET("/orders", adminController.GetAllOrders(db))
	}
}
