package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vru01/SanchiWellnessWebsite/models"
)

// -------- Request Structs --------

type CheckoutItem struct {
	ProductID uint    `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // client copy, never used for money
}

type CheckoutRequest struct {
	UserID        string         `json:"userId"`
	TransactionID string         `json:"transactionId"`
	Address       string         `json:"address"`
	CartItems     []CheckoutItem `json:"cartItems"`
}

type UpdateStatusRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.OrderStatusPendingVerification)):
		return models.OrderStatusPendingVerification, nil
	case strings.ToLower(string(models.OrderStatusPaid)):
		return models.OrderStatusPaid, nil
	case strings.ToLower(string(models.OrderStatusRejected)):
		return models.OrderStatusRejected, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// buildOrder re-prices every submitted line against the catalog and
// returns the snapshot order. Any missing product aborts the whole
// batch; nothing is written before this succeeds.
func buildOrder(db *gorm.DB, req CheckoutRequest) (*models.Order, error) {
	var total float64
	var items []models.OrderItem

	for _, line := range req.CartItems {
		var product models.Product
		if err := db.First(&product, "id = ?", line.ProductID).Error; err != nil {
			return nil, fmt.Errorf("product not found for ID: %d", line.ProductID)
		}

		total += product.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			Name:     product.Name,
			Price:    product.Price,
			Quantity: line.Quantity,
		})
	}

	return &models.Order{
		UserID:          req.UserID,
		Items:           items,
		TotalAmount:     total,
		Status:          models.OrderStatusPendingVerification,
		PaymentMethod:   "UPI",
		TransactionID:   req.TransactionID,
		ShippingAddress: req.Address,
		CreatedAt:       time.Now(),
	}, nil
}

// -------- Handlers --------

// POST /api/checkout
//
// Order creation and cart clearing are deliberately separate store
// calls: a crash in between leaves a stale cart, which is harmless to
// re-clear. Failures past input validation are reported opaquely; the
// real cause stays in the server log.
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
			return
		}
		if req.UserID == "" || len(req.CartItems) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
			return
		}

		order, err := buildOrder(db, req)
		if err != nil {
			log.Printf("❌ Checkout error for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing failed. Please contact support."})
			return
		}

		if err := db.Create(order).Error; err != nil {
			log.Printf("❌ Checkout error for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing failed. Please contact support."})
			return
		}

		// Best effort: the order exists, a leftover cart only costs the
		// user a manual clear.
		if err := db.Where("user_id = ?", req.UserID).Delete(&models.CartItem{}).Error; err != nil {
			log.Printf("⚠️ Failed to clear cart for user %s after order %d: %v", req.UserID, order.ID, err)
		}

		broadcastOrderEvent("order_created", *order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"orderId": order.ID,
		})
	}
}

// GET /api/orders/:userId
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var orders []models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		formatted := make([]gin.H, 0, len(orders))
		for _, order := range orders {
			items := make([]gin.H, 0, len(order.Items))
			for _, item := range order.Items {
				items = append(items, gin.H{
					"name":  item.Name,
					"qty":   item.Quantity,
					"price": item.Price,
				})
			}
			formatted = append(formatted, gin.H{
				"id":     order.ID,
				"total":  order.TotalAmount,
				"status": order.Status,
				"date":   order.CreatedAt,
				"items":  items,
			})
		}

		c.JSON(http.StatusOK, formatted)
	}
}

// GET /api/admin/all-orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// POST /api/admin/update-status
//
// The only mutation an order ever sees. Paid and Rejected are final;
// verification is a manual trust boundary, so no payment re-check
// happens here.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if newStatus == models.OrderStatusPendingVerification {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.Status != models.OrderStatusPendingVerification {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order already finalized"})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		order.Status = newStatus
		broadcastOrderEvent("status_updated", order)

		c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
	}
}
