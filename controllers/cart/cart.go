package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vru01/SanchiWellnessWebsite/models"
)

type AddToCartInput struct {
	UserID  string `json:"userId" binding:"required"`
	Product struct {
		ID uint `json:"id" binding:"required"`
	} `json:"product" binding:"required"`
}

type CartLineInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

// GET /api/cart/:userId
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		items := []models.CartItem{}
		if err := db.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// POST /api/cart/add
//
// First add inserts the row at quantity 1; every repeat add for the
// same (user, product) pair bumps the counter instead.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// The submitted product body is only trusted for its id; name,
		// price and image are denormalized from the catalog row.
		var product models.Product
		if err := db.First(&product, "id = ?", input.Product.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", input.UserID, product.ID).First(&item).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newItem := models.CartItem{
					UserID:    input.UserID,
					ProductID: product.ID,
					Name:      product.Name,
					Price:     product.Price,
					Image:     product.Image,
					Quantity:  1,
					AddedAt:   time.Now(),
				}
				if err := db.Create(&newItem).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity++
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
	}
}

// POST /api/cart/decrease
//
// Quantity floors at 1; dropping a line entirely is the explicit
// remove operation, never a side effect of decrementing.
func DecreaseQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", input.UserID, input.ProductID).First(&item).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		if err != nil || item.Quantity <= 1 {
			c.JSON(http.StatusOK, gin.H{"message": "Cannot decrease further"})
			return
		}

		item.Quantity--
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Quantity decreased"})
	}
}

// POST /api/cart/remove
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := db.Where("user_id = ? AND product_id = ?", input.UserID, input.ProductID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}
