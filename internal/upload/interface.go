package upload

import "context"

type UseCase interface {
	// Upload stores the file under a generated name and returns its public URL.
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)
}
