package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"business-admin/internal/model"
)

// maxMultipartMemory keeps larger uploads spooled to temp files.
const maxMultipartMemory = 8 << 20

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.MaxMultipartMemory = maxMultipartMemory

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	srv.gin.Static(srv.upload.PublicPath, srv.upload.Dir)
}

// registerDomainRoutes wires every collection under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	setups := []struct {
		name  string
		setup func(context.Context, *gin.RouterGroup) error
	}{
		{model.CollectionCategories, srv.setupCategoryDomain},
		{model.CollectionCoupons, srv.setupCouponDomain},
		{model.CollectionRoomTypes + "/" + model.CollectionRooms, srv.setupRoomDomain},
		{model.CollectionListings, srv.setupListingDomain},
		{"uploads", srv.setupUploadDomain},
	}
	for _, s := range setups {
		if err := s.setup(ctx, api); err != nil {
			srv.l.Errorf(ctx, "httpserver.registerDomainRoutes: %s: %v", s.name, err)
			return err
		}
	}

	return nil
}
