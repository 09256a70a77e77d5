package usecase

import (
	"strings"

	"github.com/google/uuid"

	"business-admin/internal/upload/repository"
	"business-admin/pkg/log"
)

// Config limits what can be uploaded and where it is published.
type Config struct {
	PublicPath        string
	MaxSizeBytes      int64
	AllowedExtensions []string
}

type implUseCase struct {
	storage    repository.Storage
	l          log.Logger
	publicPath string
	maxSize    int64
	allowed    map[string]bool
	newName    func() string
}

func New(storage repository.Storage, l log.Logger, cfg Config) *implUseCase {
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	return &implUseCase{
		storage:    storage,
		l:          l,
		publicPath: strings.TrimRight(cfg.PublicPath, "/"),
		maxSize:    cfg.MaxSizeBytes,
		allowed:    allowed,
		newName:    uuid.NewString,
	}
}
