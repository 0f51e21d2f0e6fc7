package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/Vru01/SanchiWellnessWebsite/controllers/user"
)

// SetupAuthRoutes registers signup and login.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/signup", userControllers.Signup(db)) // POST /api/signup
	api.POST("/login", userControllers.Login(db))   // POST /api/login
}
