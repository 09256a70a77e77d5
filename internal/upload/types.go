package upload

import "io"

type UploadInput struct {
	FileName string
	// Size is the size announced by the client, or -1 when unknown. The stored size is enforced separately.
	Size    int64
	Content io.Reader
}

type UploadOutput struct {
	URL  string
	Name string
	Size int64
}
