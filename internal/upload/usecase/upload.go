package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"business-admin/internal/upload"
	"business-admin/internal/upload/repository"
)

func (uc *implUseCase) Upload(ctx context.Context, input upload.UploadInput) (upload.UploadOutput, error) {
	ext := strings.ToLower(filepath.Ext(input.FileName))
	if !uc.allowed[ext] {
		return upload.UploadOutput{}, upload.ErrExtensionNotAllowed
	}
	if input.Size == 0 {
		return upload.UploadOutput{}, upload.ErrEmptyFile
	}
	if input.Size > uc.maxSize {
		return upload.UploadOutput{}, upload.ErrFileTooLarge
	}

	name := uc.newName() + ext
	n, err := uc.storage.Save(ctx, name, input.Content, uc.maxSize)
	if errors.Is(err, repository.ErrTooLarge) {
		return upload.UploadOutput{}, upload.ErrFileTooLarge
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upload Save: %v", err)
		return upload.UploadOutput{}, err
	}
	if n == 0 {
		if err := uc.storage.Delete(ctx, name); err != nil {
			uc.l.Warnf(ctx, "uc.Upload Delete: %v", err)
		}
		return upload.UploadOutput{}, upload.ErrEmptyFile
	}

	uc.l.Infof(ctx, "uc.Upload: stored %s (%d bytes)", name, n)
	return upload.UploadOutput{
		URL:  uc.publicPath + "/" + name,
		Name: name,
		Size: n,
	}, nil
}
