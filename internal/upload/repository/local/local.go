package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"business-admin/internal/upload/repository"
	"business-admin/pkg/log"
)

type implStorage struct {
	dir string
	l   log.Logger
}

// New creates a Storage writing into dir, creating it when missing.
func New(dir string, l log.Logger) (repository.Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload/repository/local: create %s: %w", dir, err)
	}
	return &implStorage{dir: dir, l: l}, nil
}

func (s *implStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", repository.ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes into a temp file first and renames it, so readers never see a partial file.
func (s *implStorage) Save(ctx context.Context, name string, r io.Reader, limit int64) (int64, error) {
	dst, err := s.path(name)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		s.l.Errorf(ctx, "upload/repository/local.Save create: %v", err)
		return 0, repository.ErrFailedToWrite
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(r, limit+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.l.Errorf(ctx, "upload/repository/local.Save write: %v", err)
		return 0, repository.ErrFailedToWrite
	}
	if n > limit {
		return 0, repository.ErrTooLarge
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		s.l.Errorf(ctx, "upload/repository/local.Save rename: %v", err)
		return 0, repository.ErrFailedToWrite
	}
	return n, nil
}

func (s *implStorage) Delete(ctx context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		s.l.Errorf(ctx, "upload/repository/local.Delete: %v", err)
		return err
	}
	return nil
}
