package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/Vru01/SanchiWellnessWebsite/controllers/product"
	"github.com/Vru01/SanchiWellnessWebsite/middleware"
)

// SetupProductRoutes registers the public catalog listing and the
// API-key-protected admin CRUD.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db)) // GET /api/products

		productAdmin := products.Group("/admin")
		productAdmin.Use(middleware.ValidateAPIKey)
		{
			productAdmin.POST("/add", productcontroller.CreateProduct(db))               // POST /api/products/admin/add
			productAdmin.PUT("/update/:id", productcontroller.UpdateProduct(db))         // PUT /api/products/admin/update/:id
			productAdmin.DELETE("/delete/:id", productcontroller.DeleteProduct(db))      // DELETE /api/products/admin/delete/:id
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db)) // GET /api/products/admin/export-excel
		}
	}
}
