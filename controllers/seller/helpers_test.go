package sellerController

import (
	"bytes"
	"io"
	"mime/multipart"
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

// pngBytes is a minimal PNG signature plus padding, enough for MIME sniffing.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

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
	group := r.Group("/seller", middleware.Authenticate(db), middleware.RequireSeller())
	group.POST("/product/upload", CreateProduct(db))
	group.GET("/products", ListProducts(db))
	group.GET("/products/export", ExportProducts(db))
	group.GET("/product/:id", GetProduct(db))
	group.PUT("/product/:id", UpdateProduct(db))
	group.DELETE("/product/:id", DeleteProduct(db))
	group.GET("/orders", GetOrders(db))
	group.PUT("/orders/:orderId/status", UpdateOrderStatus(db))
	return r
}

func createSeller(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	seller := &models.User{
		FirstName:       "Sam",
		Email:           email,
		Phone:           "5550000",
		Password:        "irrelevant",
		Role:            models.RoleSeller,
		ShopName:        "Shop " + email,
		BusinessAddress: "1 Main St",
	}
	require.NoError(t, db.Create(seller).Error)
	return seller
}

func bearer(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	return "Bearer " + token
}

type formFile struct {
	field, name string
	content     []byte
}

// multipartBody builds a multipart form from fields (repeated keys allowed)
// and files.
func multipartBody(t *testing.T, fields [][2]string, files []formFile) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, kv := range fields {
		require.NoError(t, w.WriteField(kv[0], kv[1]))
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func doMultipart(r *gin.Engine, method, path, authHeader string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
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
