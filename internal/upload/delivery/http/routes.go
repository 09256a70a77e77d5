package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/uploads", mw.Auth(), mw.Tenant(), mw.RateLimit(), h.Upload)
}
