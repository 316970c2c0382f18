package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/auth"
)

// SetupAuthRoutes registers the public credential endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	group := r.Group("/auth")
	{
		group.POST("/signup", auth.SignupHandler(db))
		group.POST("/login", auth.LoginHandler(db))
		group.POST("/logout", auth.LogoutHandler())
	}
}
