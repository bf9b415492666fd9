package routes

import (
	cartControllers "github.com/AleSenlle/el-brote-verde/controllers/cart"
	"github.com/AleSenlle/el-brote-verde/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the JWT-protected cart endpoints.
func SetupCartRoutes(r *gin.Engine, deps *Deps) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.GET("/summary", cartControllers.GetCartSummary(deps.Carts))
		cartGroup.POST("/items", cartControllers.AddItem(deps.Carts))
		cartGroup.PUT("/items/:id", cartControllers.UpdateItem(deps.Carts))
		cartGroup.DELETE("/items/:id", cartControllers.DeleteItem(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}
}
