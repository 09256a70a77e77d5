package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	uploadHTTP "business-admin/internal/upload/delivery/http"
	uploadStorage "business-admin/internal/upload/repository/local"
	uploadUC "business-admin/internal/upload/usecase"
)

func (srv HTTPServer) setupUploadDomain(ctx context.Context, api *gin.RouterGroup) error {
	storage, err := uploadStorage.New(srv.upload.Dir, srv.l)
	if err != nil {
		return fmt.Errorf("upload storage: %w", err)
	}
	uc := uploadUC.New(storage, srv.l, uploadUC.Config{
		PublicPath:        srv.upload.PublicPath,
		MaxSizeBytes:      srv.upload.MaxSizeBytes,
		AllowedExtensions: srv.upload.AllowedExtensions,
	})
	h := uploadHTTP.New(srv.l, uc)
	uploadHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Upload domain registered, files served at %s", srv.upload.PublicPath)
	return nil
}
