package routes

import (
	"net/http"

	"github.com/AleSenlle/el-brote-verde/auth"
	"github.com/AleSenlle/el-brote-verde/cart"
	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/AleSenlle/el-brote-verde/preload"
	"github.com/gin-gonic/gin"
)

// Deps are the application-level state containers, constructed once in
// main and passed down into the handlers.
type Deps struct {
	Products   *catalog.ProductStore
	Aggregator *catalog.Aggregator
	Auth       *auth.Service
	Carts      *cart.Manager
	Preloader  *preload.Preloader
	JWTSecret  string
}

// SetupRoutes is the single entry-point that wires up the catalog,
// auth, cart, and admin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 1️⃣ Public catalog + auth routes (no middleware)
	SetupCatalogRoutes(r, deps)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Cart routes (JWT-protected)
	SetupCartRoutes(r, deps)

	// 3️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, deps)
}
