package usecase

import (
	"github.com/google/uuid"

	"business-admin/internal/category/repository"
	"business-admin/pkg/cache"
	"business-admin/pkg/log"
)

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache cache.Cache
	l     log.Logger
	newID func() string
}

// New creates the category UseCase. A nil cache disables list caching.
func New(repo repository.Repository, c cache.Cache, l log.Logger) *implUseCase {
	if c == nil {
		c = cache.NewNop()
	}
	return &implUseCase{
		repo:  repo,
		cache: c,
		l:     l,
		newID: uuid.NewString,
	}
}
