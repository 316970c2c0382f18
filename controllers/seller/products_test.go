package sellerController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftkart/marketplace-api/models"
)

func productFields() [][2]string {
	return [][2]string{
		{"name", "Clay Mug"},
		{"description", "Hand-thrown stoneware mug"},
		{"price", "15.50"},
		{"category", "Crafts"},
		{"quantity", "10"},
	}
}

func TestCreateProductWithPhotos(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")

	body, ct := multipartBody(t, productFields(), []formFile{
		{"photos", "a.png", pngBytes},
		{"photos", "b.png", pngBytes},
	})
	w := doMultipart(r, http.MethodPost, "/seller/product/upload", bearer(t, seller), body, ct)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Clay Mug").First(&product).Error)
	assert.Equal(t, seller.ID, product.SellerID)
	assert.Equal(t, models.ProductActive, product.Status)
	require.Len(t, product.Photos, 2)
	for _, name := range product.Photos {
		_, err := os.Stat(filepath.Join(UploadDir(), name))
		assert.NoError(t, err, "photo file %s should exist", name)
	}
}

func TestCreateProductRejectsNonImage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")

	body, ct := multipartBody(t, productFields(), []formFile{
		{"photos", "notes.txt", []byte("plain text, not an image")},
	})
	w := doMultipart(r, http.MethodPost, "/seller/product/upload", bearer(t, seller), body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)

	entries, err := os.ReadDir(UploadDir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not leave files behind")
}

func TestCreateProductRejectsTooManyPhotos(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")

	var files []formFile
	for i := 0; i < 6; i++ {
		files = append(files, formFile{"photos", fmt.Sprintf("p%d.png", i), pngBytes})
	}
	body, ct := multipartBody(t, productFields(), files)
	w := doMultipart(r, http.MethodPost, "/seller/product/upload", bearer(t, seller), body, ct)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductRequiresSellerRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)

	customer := &models.User{
		FirstName: "Jane", Email: "c@buyer.test", Phone: "5550000",
		Password: "irrelevant", Role: models.RoleCustomer,
	}
	require.NoError(t, db.Create(customer).Error)

	body, ct := multipartBody(t, productFields(), []formFile{{"photos", "a.png", pngBytes}})
	w := doMultipart(r, http.MethodPost, "/seller/product/upload", bearer(t, customer), body, ct)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProductPhotoReconciliation(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")
	token := bearer(t, seller)

	body, ct := multipartBody(t, productFields(), []formFile{
		{"photos", "a.png", pngBytes},
		{"photos", "b.png", pngBytes},
	})
	require.Equal(t, http.StatusCreated,
		doMultipart(r, http.MethodPost, "/seller/product/upload", token, body, ct).Code)

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Clay Mug").First(&product).Error)
	require.Len(t, product.Photos, 2)
	kept, dropped := product.Photos[0], product.Photos[1]

	// Keep the first photo, drop the second, add one new upload.
	body, ct = multipartBody(t,
		[][2]string{{"existingPhotos", kept}},
		[]formFile{{"photos", "c.png", pngBytes}},
	)
	w := doMultipart(r, http.MethodPut, fmt.Sprintf("/seller/product/%d", product.ID), token, body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, db.First(&product, product.ID).Error)
	require.Len(t, product.Photos, 2)
	assert.Equal(t, kept, product.Photos[0])

	_, err := os.Stat(filepath.Join(UploadDir(), kept))
	assert.NoError(t, err, "kept photo file must remain")
	_, err = os.Stat(filepath.Join(UploadDir(), dropped))
	assert.True(t, os.IsNotExist(err), "dropped photo file must be deleted")
	_, err = os.Stat(filepath.Join(UploadDir(), product.Photos[1]))
	assert.NoError(t, err, "new photo file must exist")
}

func TestUpdateProductFieldsWithoutPhotoState(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")
	token := bearer(t, seller)

	body, ct := multipartBody(t, productFields(), []formFile{{"photos", "a.png", pngBytes}})
	require.Equal(t, http.StatusCreated,
		doMultipart(r, http.MethodPost, "/seller/product/upload", token, body, ct).Code)

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Clay Mug").First(&product).Error)
	originalPhotos := product.Photos

	body, ct = multipartBody(t, [][2]string{{"price", "18.00"}, {"status", "draft"}}, nil)
	w := doMultipart(r, http.MethodPut, fmt.Sprintf("/seller/product/%d", product.ID), token, body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, db.First(&product, product.ID).Error)
	assert.InDelta(t, 18.00, product.Price, 1e-9)
	assert.Equal(t, models.ProductDraft, product.Status)
	assert.Equal(t, originalPhotos, product.Photos, "photo set must be untouched")
}

func TestUpdateProductScopedToOwner(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	owner := createSeller(t, db, "a@shop.test")
	intruder := createSeller(t, db, "b@shop.test")
	token := bearer(t, owner)

	body, ct := multipartBody(t, productFields(), []formFile{{"photos", "a.png", pngBytes}})
	require.Equal(t, http.StatusCreated,
		doMultipart(r, http.MethodPost, "/seller/product/upload", token, body, ct).Code)

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Clay Mug").First(&product).Error)

	body, ct = multipartBody(t, [][2]string{{"price", "1.00"}}, nil)
	w := doMultipart(r, http.MethodPut, fmt.Sprintf("/seller/product/%d", product.ID), bearer(t, intruder), body, ct)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/seller/product/%d", product.ID), bearer(t, intruder), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProductRemovesFiles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")
	token := bearer(t, seller)

	body, ct := multipartBody(t, productFields(), []formFile{{"photos", "a.png", pngBytes}})
	require.Equal(t, http.StatusCreated,
		doMultipart(r, http.MethodPost, "/seller/product/upload", token, body, ct).Code)

	var product models.Product
	require.NoError(t, db.Where("name = ?", "Clay Mug").First(&product).Error)
	photo := product.Photos[0]

	w := doRequest(r, http.MethodDelete, fmt.Sprintf("/seller/product/%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
	_, err := os.Stat(filepath.Join(UploadDir(), photo))
	assert.True(t, os.IsNotExist(err))
}

func TestExportProducts(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	seller := createSeller(t, db, "a@shop.test")

	require.NoError(t, db.Create(&models.Product{
		SellerID: seller.ID, Name: "Clay Mug", Price: 15.5, Quantity: 10,
		Category: models.CategoryCrafts, Description: "mug", Photos: []string{"a.png"},
	}).Error)

	w := doRequest(r, http.MethodGet, "/seller/products/export", bearer(t, seller), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestListProductsOnlyOwn(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	db := setupTestDB(t)
	r := setupRouter(db)
	sellerA := createSeller(t, db, "a@shop.test")
	sellerB := createSeller(t, db, "b@shop.test")

	require.NoError(t, db.Create(&models.Product{
		SellerID: sellerA.ID, Name: "Clay Mug", Price: 15.5, Quantity: 10,
		Category: models.CategoryCrafts, Description: "mug", Photos: []string{"a.png"},
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		SellerID: sellerB.ID, Name: "Silver Ring", Price: 42, Quantity: 3,
		Category: models.CategoryJewelry, Description: "ring", Photos: []string{"b.png"},
	}).Error)

	w := doRequest(r, http.MethodGet, "/seller/products", bearer(t, sellerA), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Clay Mug", resp.Products[0].Name)
}
