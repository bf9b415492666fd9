package cartControllers

import (
	"net/http"

	"github.com/AleSenlle/el-brote-verde/cart"
	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/gin-gonic/gin"
)

type AddItemInput struct {
	ID             string  `json:"id" binding:"required"`
	Name           string  `json:"name"`
	ScientificName string  `json:"scientific_name"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	ImageURL       string  `json:"image_url"`
	Family         string  `json:"family"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func userCart(c *gin.Context, carts *cart.Manager) (*cart.Machine, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userID, _ := userIDVal.(string)
	return carts.ForUser(userID), true
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := userCart(c, carts)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, m.State())
	}
}

// GET /cart/summary
func GetCartSummary(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := userCart(c, carts)
		if !ok {
			return
		}
		state := m.State()
		c.JSON(http.StatusOK, gin.H{
			"totalAmount": state.TotalAmount,
			"totalItems":  state.TotalItems,
			"shipping":    m.Shipping(),
			"total":       m.Total(),
		})
	}
}

// POST /cart/items
func AddItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := userCart(c, carts)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m.AddToCart(models.CartItem{
			ID:             input.ID,
			Name:           input.Name,
			ScientificName: input.ScientificName,
			Price:          input.Price,
			ImageURL:       input.ImageURL,
			Family:         input.Family,
		})
		c.JSON(http.StatusOK, m.State())
	}
}

// PUT /cart/items/:id
func UpdateItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := userCart(c, carts)
		if !ok {
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m.UpdateQuantity(c.Param("id"), *input.Quantity)
		c.JSON(http.StatusOK, m.State())
	}
}

// DELETE /cart/items/:id
func DeleteItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := userCart(c, carts)
		if !ok {
			return
		}
		m.RemoveFromCart(c.Param("id"))
		c.JSON(http.StatusOK, m.State())
	}
}

// DELETE /cart?confirm=true
//
// Clearing everything needs the explicit confirm flag; the UI's
// confirmation dialog sets it.
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := userCart(c, carts)
		if !ok {
			return
		}
		if c.Query("confirm") != "true" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Clearing the cart requires confirm=true"})
			return
		}
		m.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
