package catalogController

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/preload"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plantsResponse struct {
	Plants     []models.Plant `json:"plants"`
	Pagination struct {
		CurrentPage int `json:"current_page"`
		TotalPages  int `json:"total_pages"`
		PageSize    int `json:"page_size"`
		TotalItems  int `json:"total_items"`
		StartItem   int `json:"start_item"`
		EndItem     int `json:"end_item"`
	} `json:"pagination"`
	Search    string `json:"search"`
	HasSearch bool   `json:"has_search"`
	Page      int    `json:"page"`
}

// testRouter serves the catalog over a fake remote collection with n
// products and no external source.
func testRouter(t *testing.T, n int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, models.Product{
			ID:     fmt.Sprint(i),
			Name:   fmt.Sprintf("Plant %d", i),
			Family: "Rosaceae",
			Price:  10,
			Image:  fmt.Sprintf("https://img.example.com/%d.jpg", i),
		})
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(products)
	}))
	t.Cleanup(srv.Close)

	store := catalog.NewProductStore(catalog.NewProductAPI(srv.URL))
	require.NoError(t, store.Fetch(context.Background(), 1, 50))
	agg := catalog.NewAggregator(store, catalog.NewTrefleClient("", ""), 1)

	preloader := preload.New()
	t.Cleanup(preloader.Cancel)

	r := gin.New()
	r.GET("/plants", GetPlants(agg, preloader))
	r.GET("/plants/:id", GetPlant(agg))
	r.GET("/categories", GetCategories(store))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) plantsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp plantsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetPlantsPagination(t *testing.T) {
	r := testRouter(t, 23)

	resp := get(t, r, "/plants?per_page=9")
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, 23, resp.Pagination.TotalItems)
	assert.Len(t, resp.Plants, 9)
	assert.Equal(t, 1, resp.Pagination.StartItem)
	assert.Equal(t, 9, resp.Pagination.EndItem)

	resp = get(t, r, "/plants?per_page=9&page=3")
	assert.Equal(t, 3, resp.Pagination.CurrentPage)
	assert.Len(t, resp.Plants, 5)
	assert.Equal(t, 19, resp.Pagination.StartItem)
	assert.Equal(t, 23, resp.Pagination.EndItem)
}

func TestGetPlantsSearchFromURLIsImmediate(t *testing.T) {
	r := testRouter(t, 23)

	// The first response already reflects the deep-linked filter, no
	// debounce delay.
	resp := get(t, r, "/plants?search=Plant+12")
	require.Len(t, resp.Plants, 1)
	assert.Equal(t, "Plant 12", resp.Plants[0].CommonName)
	assert.Equal(t, "Plant 12", resp.Search)
	assert.True(t, resp.HasSearch)
}

func TestGetPlantsOutOfRangePageStaysOnFirst(t *testing.T) {
	r := testRouter(t, 5)
	resp := get(t, r, "/plants?per_page=9&page=99")
	assert.Equal(t, 1, resp.Page)
	assert.Len(t, resp.Plants, 5)
}

func TestGetPlantsRejectsUnknownPageSize(t *testing.T) {
	r := testRouter(t, 23)
	resp := get(t, r, "/plants?per_page=7")
	assert.Equal(t, 9, resp.Pagination.PageSize)
}

func TestGetPlantsEmptyCatalog(t *testing.T) {
	r := testRouter(t, 0)
	resp := get(t, r, "/plants")
	assert.Empty(t, resp.Plants)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestGetPlantByID(t *testing.T) {
	r := testRouter(t, 3)

	req := httptest.NewRequest(http.MethodGet, "/plants/mockapi-2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var plant models.Plant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plant))
	assert.Equal(t, "Plant 2", plant.CommonName)
	assert.Equal(t, models.SourceMockAPI, plant.Source)

	req = httptest.NewRequest(http.MethodGet, "/plants/trefle-99", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategories(t *testing.T) {
	r := testRouter(t, 2)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"all", "Rosaceae"}, resp.Categories)
}
