package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Vru01/SanchiWellnessWebsite/controllers/order"
	"github.com/Vru01/SanchiWellnessWebsite/middleware"
)

// SetupOrderRoutes registers checkout, order history, and the
// admin order surface.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	// Place an order from the submitted cart
	api.POST("/checkout", orderControllers.Checkout(db)) // POST /api/checkout

	// Order history for a specific user
	api.GET("/orders/:userId", orderControllers.GetUserOrders(db)) // GET /api/orders/:userId

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/all-orders", orderControllers.GetAllOrders(db))         // GET /api/admin/all-orders
		adminGroup.POST("/update-status", orderControllers.UpdateOrderStatus(db)) // POST /api/admin/update-status

		// websocket endpoint for real-time order updates
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocket) // GET /api/admin/orders/ws
	}
}
