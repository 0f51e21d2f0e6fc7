package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Vru01/SanchiWellnessWebsite/controllers/cart"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cartGroup := api.Group("/cart")
	{
		cartGroup.GET("/:userId", cartControllers.GetCart(db))           // GET /api/cart/:userId
		cartGroup.POST("/add", cartControllers.AddToCart(db))            // POST /api/cart/add
		cartGroup.POST("/decrease", cartControllers.DecreaseQuantity(db)) // POST /api/cart/decrease
		cartGroup.POST("/remove", cartControllers.RemoveCartItem(db))    // POST /api/cart/remove
	}
}
