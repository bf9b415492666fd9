package routes

import (
	adminController "github.com/AleSenlle/el-brote-verde/controllers/admin"
	"github.com/AleSenlle/el-brote-verde/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an
// admin session; an API key on top when one is configured.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	feed := adminController.NewProductFeed(deps.Products)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey, middleware.ValidateToken(deps.JWTSecret), middleware.RequireAdmin)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", adminController.GetProducts(deps.Products))
			productAdmin.POST("", adminController.CreateProduct(deps.Products))
			productAdmin.PUT("/:id", adminController.UpdateProduct(deps.Products))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(deps.Products))
			productAdmin.POST("/refresh", adminController.RefreshProducts(deps.Products))
			productAdmin.GET("/export-excel", adminController.ExportProductsToExcel(deps.Products))
			productAdmin.GET("/ws", feed.Handler)
		}
	}
}
