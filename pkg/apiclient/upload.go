package apiclient

import (
	"context"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// UploadPath is the file upload endpoint.
const UploadPath = "/api/v1/uploads"

// Upload sends r as a multipart file and returns the hosted URL to store in an image field.
func (s *Session) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	err := s.call(ctx, "", http.MethodPost, UploadPath, func(req *resty.Request) {
		req.SetFileReader("file", filename, r)
	}, &out)
	if err != nil {
		return "", err
	}
	return out.URL, nil
}
