package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	types := rg.Group("/room-types", mw.Auth(), mw.Tenant(), mw.RateLimit())
	{
		types.GET("", h.ListRoomTypes)
		types.POST("", h.CreateRoomType)
		types.PUT("/reorder", h.ReorderRoomTypes)
		types.GET("/:id", h.DetailRoomType)
		types.PUT("/:id", h.UpdateRoomType)
		types.DELETE("/:id", h.DeleteRoomType)
	}

	rooms := rg.Group("/rooms", mw.Auth(), mw.Tenant(), mw.RateLimit())
	{
		rooms.GET("", h.ListRooms)
		rooms.POST("", h.CreateRoom)
		rooms.PUT("/reorder", h.ReorderRooms)
		rooms.GET("/:id", h.DetailRoom)
		rooms.PUT("/:id", h.UpdateRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}
