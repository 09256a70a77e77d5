package http

import "business-admin/internal/upload"

type uploadResp struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

func newUploadResp(out upload.UploadOutput) uploadResp {
	return uploadResp{URL: out.URL, Name: out.Name, Size: out.Size}
}
