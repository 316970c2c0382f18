package orderController

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftkart/marketplace-api/auth"
	"github.com/craftkart/marketplace-api/middleware"
	"github.com/craftkart/marketplace-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("", middleware.Authenticate(db))
	authed.POST("/cart/checkout", CheckoutHandler(db, NewFeed()))
	authed.POST("/cart/add", AddToCart(db))
	authed.GET("/orders", GetOrders(db))
	authed.DELETE("/orders/:id/cancel", CancelOrder(db))
	return r
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: "Test",
		Email:     email,
		Phone:     "5550000",
		Password:  "irrelevant",
		Role:      role,
	}
	if role == models.RoleSeller {
		user.ShopName = "Shop " + email
		user.BusinessAddress = "1 Main St"
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProduct(t *testing.T, db *gorm.DB, sellerID uint, name string, price float64, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:    sellerID,
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Category:    models.CategoryCrafts,
		Description: "test product",
		Photos:      []string{"photo.jpg"},
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func bearer(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, path, authHeader string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
