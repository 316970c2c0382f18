package orderController

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/logger"
	"github.com/craftkart/marketplace-api/middleware"
	"github.com/craftkart/marketplace-api/models"
)

type CheckoutItem struct {
	ProductID uint `json:"product"`
	Quantity  int  `json:"quantity"`
}

type CheckoutInput struct {
	Items []CheckoutItem `json:"items"`
}

var ErrEmptyCheckout = errors.New("no items in cart")

type ProductNotFoundError struct {
	ProductID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

type InsufficientStockError struct {
	ProductID uint
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d units available for %s", e.Available, e.Name)
}

type InvalidQuantityError struct {
	ProductID uint
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity for product %d must be at least 1", e.ProductID)
}

// Checkout turns a client-held cart into one order, possibly spanning many
// sellers. Price and seller are snapshotted from the authoritative product
// rows, never from client input. The stock decrement and the order insert
// commit in one transaction; the guarded UPDATE re-checks quantity under the
// row lock, so of two concurrent checkouts contending for the last units
// exactly one commits and the other fails with the stock error.
func Checkout(db *gorm.DB, customerID uint, items []CheckoutItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCheckout
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var lines []models.OrderItem
		var total float64

		for _, it := range items {
			if it.Quantity < 1 {
				return &InvalidQuantityError{ProductID: it.ProductID}
			}

			var product models.Product
			if err := tx.First(&product, it.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: it.ProductID}
				}
				return err
			}
			if product.Quantity < it.Quantity {
				return &InsufficientStockError{
					ProductID: product.ID,
					Name:      product.Name,
					Available: product.Quantity,
				}
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", product.ID, it.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Lost a concurrent decrement; report the fresh count.
				var current models.Product
				if err := tx.First(&current, product.ID).Error; err == nil {
					product.Quantity = current.Quantity
				}
				return &InsufficientStockError{
					ProductID: product.ID,
					Name:      product.Name,
					Available: product.Quantity,
				}
			}

			lines = append(lines, models.OrderItem{
				ProductID: product.ID,
				SellerID:  product.SellerID,
				Quantity:  it.Quantity,
				Price:     product.Price,
				Status:    models.ItemPending,
			})
			total += product.Price * float64(it.Quantity)
		}

		order = models.Order{
			CustomerID: customerID,
			Items:      lines,
			Total:      total,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /cart/checkout
func CheckoutHandler(db *gorm.DB, feed *Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer := middleware.CurrentUser(c)

		var in CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		order, err := Checkout(db, customer.ID, in.Items)
		if err != nil {
			var notFound *ProductNotFoundError
			var noStock *InsufficientStockError
			var badQty *InvalidQuantityError
			switch {
			case errors.Is(err, ErrEmptyCheckout):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No items in cart"})
			case errors.As(err, &notFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.As(err, &noStock), errors.As(err, &badQty):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.L.Error("checkout failed", zap.Uint("customer_id", customer.ID), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process checkout"})
			}
			return
		}

		feed.Broadcast(order)

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully",
			"order": gin.H{
				"id":     order.ID,
				"total":  order.Total,
				"status": order.DerivedStatus(),
			},
		})
	}
}

// POST /cart/add
//
// The cart lives on the client; this is a stock probe so the UI can reject
// dead items before checkout.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ProductID uint `json:"productId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, in.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart"})
			return
		}
		if product.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product added to cart successfully",
			"product": product,
		})
	}
}
