package sellerController

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/logger"
	"github.com/craftkart/marketplace-api/middleware"
	"github.com/craftkart/marketplace-api/models"
)

// POST /seller/product/upload (multipart, "photos" field, up to 5 images)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)

		name := c.PostForm("name")
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		category := models.Category(c.PostForm("category"))
		quantityStr := c.PostForm("quantity")
		if name == "" || description == "" || priceStr == "" || category == "" || quantityStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"All required fields must be provided"}})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid price"}})
			return
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil || quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid quantity"}})
			return
		}
		if !category.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Please select correct category for the product"}})
			return
		}
		status := models.ProductActive
		if s := c.PostForm("status"); s != "" {
			status = models.ProductStatus(s)
			if !status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid product status"}})
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil || len(form.File["photos"]) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"At least one product image is required"}})
			return
		}
		photos, err := savePhotos(c, form.File["photos"])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
			return
		}

		product := models.Product{
			SellerID:       seller.ID,
			Name:           name,
			Description:    description,
			Price:          price,
			Quantity:       quantity,
			Category:       category,
			Photos:         photos,
			Status:         status,
			Specifications: c.PostForm("specifications"),
			ShippingInfo:   c.PostForm("shippingInfo"),
		}
		if err := db.Create(&product).Error; err != nil {
			deletePhotos(photos)
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Product name must be unique"}})
				return
			}
			logger.L.Error("product create failed", zap.Uint("seller_id", seller.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Failed to create product"}})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product added successfully",
			"product": product,
		})
	}
}

// GET /seller/products
func ListProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)

		var products []models.Product
		if err := db.Where("seller_id = ?", seller.ID).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Failed to fetch products"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// GET /seller/product/:id
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)

		var product models.Product
		if err := db.Where("id = ? AND seller_id = ?", c.Param("id"), seller.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Product not found or unauthorized"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// PUT /seller/product/:id (multipart; existingPhotos keeps current files,
// new "photos" uploads are appended, anything dropped is deleted from disk)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)

		var product models.Product
		if err := db.Where("id = ? AND seller_id = ?", c.Param("id"), seller.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Product not found or unauthorized"}})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid price"}})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("quantity"); v != "" {
			quantity, err := strconv.Atoi(v)
			if err != nil || quantity < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid quantity"}})
				return
			}
			product.Quantity = quantity
		}
		if v := c.PostForm("category"); v != "" {
			category := models.Category(v)
			if !category.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Please select correct category for the product"}})
				return
			}
			product.Category = category
		}
		if v := c.PostForm("status"); v != "" {
			status := models.ProductStatus(v)
			if !status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid product status"}})
				return
			}
			product.Status = status
		}
		if v, ok := c.GetPostForm("specifications"); ok {
			product.Specifications = v
		}
		if v, ok := c.GetPostForm("shippingInfo"); ok {
			product.ShippingInfo = v
		}

		// Photo reconciliation. Only runs when the client sends photo state;
		// a plain field update leaves the photo set alone.
		existing, hasExisting := c.GetPostFormArray("existingPhotos")
		var uploads []string
		if form, err := c.MultipartForm(); err == nil && len(form.File["photos"]) > 0 {
			saved, err := savePhotos(c, form.File["photos"])
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
				return
			}
			uploads = saved
		}
		if hasExisting || len(uploads) > 0 {
			kept := make([]string, 0, len(existing))
			var removed []string
			for _, name := range product.Photos {
				if slices.Contains(existing, name) {
					kept = append(kept, name)
				} else {
					removed = append(removed, name)
				}
			}
			product.Photos = append(kept, uploads...)
			deletePhotos(removed)
		}

		if len(product.Photos) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"At least one product image is required"}})
			return
		}

		if err := db.Save(&product).Error; err != nil {
			logger.L.Error("product update failed", zap.Uint("product_id", product.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Failed to update product"}})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully",
			"product": product,
		})
	}
}

// DELETE /seller/product/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.CurrentUser(c)

		var product models.Product
		if err := db.Where("id = ? AND seller_id = ?", c.Param("id"), seller.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"errors": []string{"Product not found or unauthorized"}})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			logger.L.Error("product delete failed", zap.Uint("product_id", product.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"errors": []string{"Failed to delete product"}})
			return
		}
		deletePhotos(product.Photos)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
