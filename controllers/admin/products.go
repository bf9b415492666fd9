package adminController

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/validation"
	"github.com/gin-gonic/gin"
)

type ProductInput struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	Family         string  `json:"family"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	InStock        bool    `json:"inStock"`
	Rating         float64 `json:"rating"`
}

func (in ProductInput) product() models.Product {
	return models.Product{
		Name:           in.Name,
		ScientificName: in.ScientificName,
		Family:         in.Family,
		Description:    in.Description,
		Price:          in.Price,
		Image:          in.Image,
		InStock:        in.InStock,
		Rating:         in.Rating,
	}
}

// writeError maps store failures onto status codes: field validation is
// a 400 with the per-field messages, a remote API error keeps its
// status, anything else is a 500.
func writeError(c *gin.Context, err error) {
	var perr *validation.ProductError
	if errors.As(err, &perr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error(), "fields": perr.Fields})
		return
	}
	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GET /admin/products?search=&category=
//
// Admin listing works on the product store only; the external source is
// never merged here.
func GetProducts(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.Filtered(c.Query("search"), c.DefaultQuery("category", catalog.CategoryAll))
		c.JSON(http.StatusOK, gin.H{
			"products":   products,
			"categories": store.Categories(),
		})
	}
}

// POST /admin/products/refresh?page=&limit=
func RefreshProducts(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err := store.Fetch(c.Request.Context(), page, limit); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": store.Products()})
	}
}

// POST /admin/products
func CreateProduct(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		created, err := store.Create(c.Request.Context(), input.product())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /admin/products/:id
func UpdateProduct(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updated, err := store.Update(c.Request.Context(), c.Param("id"), input.product())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
