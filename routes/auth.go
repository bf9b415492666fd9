package routes

import (
	authControllers "github.com/AleSenlle/el-brote-verde/controllers/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the mock-auth endpoints.
func SetupAuthRoutes(r *gin.Engine, deps *Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authControllers.Login(deps.Auth))
		authGroup.POST("/register", authControllers.Register(deps.Auth))
		authGroup.POST("/logout", authControllers.Logout(deps.Auth))
	}
}
