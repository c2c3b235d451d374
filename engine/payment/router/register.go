package router

import (
	"github.com/gin-gonic/gin"

	"github.com/shopdash/shopdash/engine/auth"
	"github.com/shopdash/shopdash/engine/payment/uc"
)

// RegisterRoutes registers the payment routes. Intent creation and
// settlement need any authenticated caller; the payment listing is
// admin-only.
func RegisterRoutes(base *gin.RouterGroup, factory *uc.Factory, middleware *auth.Middleware) {
	handler := NewHandler(factory)

	authed := base.Group("")
	authed.Use(middleware.Authenticate())
	{
		authed.POST("/create-payment-intent", handler.CreateIntent)
		authed.POST("/payments", handler.RecordPayment)
	}

	admin := base.Group("/payments")
	admin.Use(middleware.Authenticate())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("", handler.ListPayments)
	}
}
