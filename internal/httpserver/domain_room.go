package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	roomHTTP "business-admin/internal/room/delivery/http"
	roomRepo "business-admin/internal/room/repository/postgre"
	roomUC "business-admin/internal/room/usecase"
)

// setupRoomDomain registers both /room-types and /rooms; they share one use case.
func (srv HTTPServer) setupRoomDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := roomRepo.New(srv.postgresDB, srv.l)
	uc := roomUC.New(repo, srv.cache, srv.l)
	h := roomHTTP.New(srv.l, uc)
	roomHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Room domain registered")
	return nil
}
