package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	coupons := rg.Group("/coupons", mw.Auth(), mw.Tenant(), mw.RateLimit())
	{
		coupons.GET("", h.List)
		coupons.POST("", h.Create)
		coupons.GET("/export", h.Export)
		coupons.PUT("/reorder", h.Reorder)
		coupons.GET("/:id", h.Detail)
		coupons.PUT("/:id", h.Update)
		coupons.DELETE("/:id", h.Delete)
	}
}
