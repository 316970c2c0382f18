package orderController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/logger"
	"github.com/craftkart/marketplace-api/middleware"
	"github.com/craftkart/marketplace-api/models"
)

// GET /orders
//
// Customers see their own orders; sellers see orders containing their items,
// filtered down to those items.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var orders []models.Order
		var err error
		if user.Role == models.RoleSeller {
			err = db.
				Where("id IN (?)", db.Model(&models.OrderItem{}).
					Select("order_id").
					Where("seller_id = ?", user.ID)).
				Preload("Items", "seller_id = ?", user.ID).
				Preload("Items.Product").
				Preload("Customer").
				Order("created_at DESC").
				Find(&orders).Error
		} else {
			err = db.
				Where("customer_id = ?", user.ID).
				Preload("Items").
				Preload("Items.Product").
				Order("created_at DESC").
				Find(&orders).Error
		}
		if err != nil {
			logger.L.Error("orders fetch failed", zap.Uint("user_id", user.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// DELETE /orders/:id/cancel
//
// All-or-nothing: allowed only while every item is still pending, and then
// every item moves to cancelled in one update. Decremented stock stays
// decremented.
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? AND customer_id = ?", c.Param("id"), user.ID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		if !order.CanCancel() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order cannot be cancelled"})
			return
		}

		if err := db.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Update("status", models.ItemCancelled).Error; err != nil {
			logger.L.Error("order cancel failed", zap.Uint("order_id", order.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
	}
}
