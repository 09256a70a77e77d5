package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/middleware"
)

// RegisterRoutes maps /categories onto the handler. Every route is tenant scoped.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	categories := rg.Group("/categories", mw.Auth(), mw.Tenant(), mw.RateLimit())
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.PUT("/reorder", h.Reorder)
		categories.GET("/:id", h.Detail)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}
