package usecase

import (
	"time"

	"github.com/google/uuid"

	"business-admin/internal/listing/repository"
	"business-admin/pkg/cache"
	"business-admin/pkg/log"
)

type implUseCase struct {
	repo  repository.Repository
	cache cache.Cache
	l     log.Logger
	newID func() string
	now   func() time.Time
}

func New(repo repository.Repository, c cache.Cache, l log.Logger) *implUseCase {
	if c == nil {
		c = cache.NewNop()
	}
	return &implUseCase{
		repo:  repo,
		cache: c,
		l:     l,
		newID: uuid.NewString,
		now:   time.Now,
	}
}
