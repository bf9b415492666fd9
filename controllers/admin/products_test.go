package adminController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AleSenlle/el-brote-verde/auth"
	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/AleSenlle/el-brote-verde/middleware"
	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

// remoteStub answers product CRUD like the remote collection would.
func remoteStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPost, http.MethodPut:
			var p models.Product
			json.NewDecoder(r.Body).Decode(&p)
			if p.ID == "" {
				p.ID = "10"
			}
			json.NewEncoder(w).Encode(p)
		default:
			json.NewEncoder(w).Encode([]models.Product{})
		}
	}))
}

func tokens(t *testing.T) (adminToken, userToken string) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store, err := storage.New(db)
	require.NoError(t, err)

	svc := auth.New(store, testSecret)
	_, adminToken, err = svc.Login("admin@test.com", "admin123")
	require.NoError(t, err)
	_, userToken, err = svc.Login("user@test.com", "user123")
	require.NoError(t, err)
	return adminToken, userToken
}

func testRouter(t *testing.T) (*gin.Engine, *catalog.ProductStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := remoteStub(t)
	t.Cleanup(srv.Close)
	store := catalog.NewProductStore(catalog.NewProductAPI(srv.URL))

	r := gin.New()
	g := r.Group("/admin")
	g.Use(middleware.ValidateToken(testSecret), middleware.RequireAdmin)
	{
		g.GET("/products", GetProducts(store))
		g.POST("/products", CreateProduct(store))
		g.PUT("/products/:id", UpdateProduct(store))
		g.DELETE("/products/:id", DeleteProduct(store))
		g.GET("/products/export-excel", ExportProductsToExcel(store))
	}
	return r, store
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{"name":"Lavender","scientific_name":"Lavandula angustifolia","family":"Lamiaceae","price":19.99,"image":"https://img.example.com/lavender.jpg"}`

func TestAdminRequiresAdminRole(t *testing.T) {
	r, _ := testRouter(t)
	adminToken, userToken := tokens(t)

	w := doJSON(r, http.MethodGet, "/admin/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/products", userToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/products", adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProductValidationErrors(t *testing.T) {
	r, store := testRouter(t)
	adminToken, _ := tokens(t)

	w := doJSON(r, http.MethodPost, "/admin/products", adminToken, `{"name":"ab"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "price")
	assert.Empty(t, store.Products(), "failed validation must not touch the cache")
}

func TestCreateProductSuccess(t *testing.T) {
	r, store := testRouter(t)
	adminToken, _ := tokens(t)

	w := doJSON(r, http.MethodPost, "/admin/products", adminToken, validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "10", created.ID)
	require.Len(t, store.Products(), 1)
}

func TestDeleteProduct(t *testing.T) {
	r, store := testRouter(t)
	adminToken, _ := tokens(t)

	doJSON(r, http.MethodPost, "/admin/products", adminToken, validBody)
	require.Len(t, store.Products(), 1)

	w := doJSON(r, http.MethodDelete, "/admin/products/10", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Products())
}

func TestGetProductsFilters(t *testing.T) {
	r, _ := testRouter(t)
	adminToken, _ := tokens(t)

	doJSON(r, http.MethodPost, "/admin/products", adminToken, validBody)

	w := doJSON(r, http.MethodGet, "/admin/products?search=lavender", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products   []models.Product `json:"products"`
		Categories []string         `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 1)
	assert.Equal(t, []string{"all", "Lamiaceae"}, resp.Categories)

	w = doJSON(r, http.MethodGet, "/admin/products?search=cactus", adminToken, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Products)
}

func TestExportProductsToExcel(t *testing.T) {
	r, _ := testRouter(t)
	adminToken, _ := tokens(t)

	doJSON(r, http.MethodPost, "/admin/products", adminToken, validBody)

	w := doJSON(r, http.MethodGet, "/admin/products/export-excel", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}
