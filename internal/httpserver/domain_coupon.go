package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	couponHTTP "business-admin/internal/coupon/delivery/http"
	couponRepo "business-admin/internal/coupon/repository/postgre"
	couponUC "business-admin/internal/coupon/usecase"
)

func (srv HTTPServer) setupCouponDomain(ctx context.Context, api *gin.RouterGroup) error {
	repo := couponRepo.New(srv.postgresDB, srv.l)
	uc := couponUC.New(repo, srv.cache, srv.l)
	h := couponHTTP.New(srv.l, uc)
	couponHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Coupon domain registered")
	return nil
}
