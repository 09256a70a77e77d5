package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	listings := rg.Group("/listings", mw.Auth(), mw.Tenant(), mw.RateLimit())
	{
		listings.GET("", h.List)
		listings.POST("", h.Create)
		listings.GET("/export", h.Export)
		listings.PUT("/reorder", h.Reorder)
		listings.GET("/:id", h.Detail)
		listings.PUT("/:id", h.Update)
		listings.DELETE("/:id", h.Delete)
	}
}
