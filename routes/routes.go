package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route
// group under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Public auth routes (no middleware)
	SetupAuthRoutes(api, db)

	// Cart routes
	SetupCartRoutes(api, db)

	// Catalog routes (public list + admin CRUD)
	SetupProductRoutes(api, db)

	// Checkout and order routes (user + admin)
	SetupOrderRoutes(api, db)
}
