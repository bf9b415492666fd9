package routes

import (
	catalogController "github.com/AleSenlle/el-brote-verde/controllers/catalog"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public catalog endpoints.
func SetupCatalogRoutes(r *gin.Engine, deps *Deps) {
	r.GET("/plants", catalogController.GetPlants(deps.Aggregator, deps.Preloader))
	r.GET("/plants/:id", catalogController.GetPlant(deps.Aggregator))
	r.GET("/categories", catalogController.GetCategories(deps.Products))
}
