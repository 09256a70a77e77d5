package http

import (
	"github.com/gin-gonic/gin"

	"business-admin/internal/upload"
	"business-admin/pkg/response"
)

// Upload godoc
// @Summary     Upload a file
// @Description Stores an image and returns the URL to put in an image_url field.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-ID header   string true "Business ID"
// @Param       file          formData file   true "File"
// @Success     201 {object} response.Resp{data=uploadResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Payload Too Large"
// @Router      /api/v1/uploads [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errFileRequired)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(ctx, "upload.http.Upload open: %v", err)
		response.Error(c, errFileRequired)
		return
	}
	defer f.Close()

	out, err := h.uc.Upload(ctx, upload.UploadInput{FileName: fh.Filename, Size: fh.Size, Content: f})
	if err != nil {
		h.l.Warnf(ctx, "upload.http.Upload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newUploadResp(out))
}
