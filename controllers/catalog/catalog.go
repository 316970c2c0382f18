package catalogController

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/models"
)

const (
	defaultPage  = 1
	defaultLimit = 12
	relatedLimit = 4
)

var sortOptions = map[string]string{
	"price-asc":  "price ASC",
	"price-desc": "price DESC",
	"newest":     "created_at DESC",
	"oldest":     "created_at ASC",
}

// GET /products/explore?category&sort&minPrice&maxPrice&page&limit
func ExploreProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if minPrice := c.Query("minPrice"); minPrice != "" {
			mp, err := strconv.ParseFloat(minPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPrice := c.Query("maxPrice"); maxPrice != "" {
			mp, err := strconv.ParseFloat(maxPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
		if err != nil || page < 1 {
			page = defaultPage
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
		if err != nil || limit < 1 {
			limit = defaultLimit
		}

		order, ok := sortOptions[c.Query("sort")]
		if !ok {
			order = sortOptions["newest"]
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := query.
			Preload("Seller").
			Order(order).
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":    products,
			"currentPage": page,
			"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
			"total":       total,
		})
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.Preload("Seller").First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// GET /products/related?category&exclude
func GetRelatedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
			return
		}

		query := db.Where("category = ?", category)
		if exclude := c.Query("exclude"); exclude != "" {
			query = query.Where("id <> ?", exclude)
		}

		var products []models.Product
		if err := query.Preload("Seller").Limit(relatedLimit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch related products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /products/sellers
func GetSellers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sellers []models.User
		if err := db.Where("role = ?", models.RoleSeller).Find(&sellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
			return
		}

		out := make([]gin.H, 0, len(sellers))
		for i := range sellers {
			var count int64
			if err := db.Model(&models.Product{}).Where("seller_id = ?", sellers[i].ID).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
				return
			}
			out = append(out, gin.H{
				"seller":        sellers[i],
				"productsCount": count,
			})
		}

		c.JSON(http.StatusOK, gin.H{"sellers": out})
	}
}

// GET /products/seller/:sellerId
func GetSellerStorefront(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var seller models.User
		if err := db.Where("id = ? AND role = ?", c.Param("sellerId"), models.RoleSeller).
			First(&seller).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller"})
			return
		}

		var products []models.Product
		if err := db.Where("seller_id = ?", seller.ID).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch seller products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"seller":   seller,
			"products": products,
		})
	}
}
