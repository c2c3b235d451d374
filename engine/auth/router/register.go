package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shopdash/shopdash/engine/auth"
	"github.com/shopdash/shopdash/engine/auth/token"
	"github.com/shopdash/shopdash/engine/auth/uc"
)

// RegisterRoutes registers the credential and user-management routes.
func RegisterRoutes(
	base *gin.RouterGroup,
	factory *uc.Factory,
	tokens *token.Service,
	denylist token.Denylist,
	middleware *auth.Middleware,
	production bool,
) {
	handler := NewHandler(factory, tokens, denylist, production)

	// Credential issuance and logout are open: the client proves identity
	// out-of-band before asking for a cookie.
	base.POST("/jwt", handler.Login)
	base.POST("/logout", handler.Logout)

	// Registration is open; everything else under /users is admin-only.
	base.POST("/users", handler.RegisterUser)

	admin := base.Group("/users")
	admin.Use(middleware.Authenticate())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", handler.ListUsers)
		admin.GET("/admin/:email", handler.CheckAdmin)
		admin.PATCH("/admin/:id", handler.PromoteUser)
		admin.DELETE("/admin/:id", handler.RemoveUser)
	}
}
