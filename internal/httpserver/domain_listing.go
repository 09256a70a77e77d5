package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	listingHTTP "business-admin/internal/listing/delivery/http"
	listingRepo "business-admin/internal/listing/repository/postgre"
	listingUC "business-admin/internal/listing/usecase"
)

func (srv HTTPServer) setupListingDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := listingRepo.New(srv.postgresDB, srv.l)
	uc := listingUC.New(repo, srv.cache, srv.l)
	h := listingHTTP.New(srv.l, uc)
	listingHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Listing domain registered")
	return nil
}
