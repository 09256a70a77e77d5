package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	categoryHTTP "business-admin/internal/category/delivery/http"
	categoryRepo "business-admin/internal/category/repository/postgre"
	categoryUC "business-admin/internal/category/usecase"
)

func (srv HTTPServer) setupCategoryDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := categoryRepo.New(srv.postgresDB, srv.l)
	uc := categoryUC.New(repo, srv.cache, srv.l)
	h := categoryHTTP.New(srv.l, uc)
	categoryHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Category domain registered")
	return nil
}
