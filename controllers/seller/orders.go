package sellerController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/logger"
	"github.com/craftkart/marketplace-api/middleware"
	"github.com/craftkart/marketplace-api/models"
)

type UpdateItemStatusInput struct {
	Status models.ItemStatus `json:"status" binding:"required"`
}

// GET /seller/orders
//
// Orders that contain the caller's items, with the item list filtered down to
// the caller. Other sellers' items in the same order are never exposed.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)

		var orders []models.Order
		if err := db.
			Where("id IN (?)", db.Model(&models.OrderItem{}).
				Select("order_id").
				Where("seller_id = ?", seller.ID)).
			Preload("Items", "seller_id = ?", seller.ID).
			Preload("Items.Product").
			Preload("Customer").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			logger.L.Error("seller orders fetch failed", zap.Uint("seller_id", seller.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		var revenue float64
		var pending, shipped int
		for i := range orders {
			hasPending, hasShipped := false, false
			for _, item := range orders[i].Items {
				revenue += item.Price * float64(item.Quantity)
				if item.Status == models.ItemPending {
					hasPending = true
				}
				if item.Status == models.ItemShipped {
					hasShipped = true
				}
			}
			if hasPending {
				pending++
			}
			if hasShipped {
				shipped++
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"stats": gin.H{
				"totalOrders":   len(orders),
				"totalRevenue":  revenue,
				"pendingOrders": pending,
				"shippedOrders": shipped,
			},
		})
	}
}

// PUT /seller/orders/:orderId/status
//
// Transitions every item of the caller within the order. The transition table
// is enforced per item; if any item cannot make the move, nothing changes.
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)
		orderID := c.Param("orderId")

		var in UpdateItemStatusInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}
		if !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var items []models.OrderItem
		if err := db.Where("order_id = ? AND seller_id = ?", orderID, seller.ID).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or unauthorized"})
			return
		}

		for _, item := range items {
			if !item.Status.CanTransitionTo(in.Status) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": "Cannot move item from " + string(item.Status) + " to " + string(in.Status),
				})
				return
			}
		}

		if err := db.Model(&models.OrderItem{}).
			Where("order_id = ? AND seller_id = ?", orderID, seller.ID).
			Update("status", in.Status).Error; err != nil {
			logger.L.Error("order status update failed",
				zap.String("order_id", orderID),
				zap.Uint("seller_id", seller.ID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		var order models.Order
		if err := db.Preload("Items", "seller_id = ?", seller.ID).
			Preload("Items.Product").
			First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Order status updated to " + string(in.Status),
			"order":   order,
		})
	}
}
