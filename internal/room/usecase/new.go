package usecase

import (
	"github.com/google/uuid"

	"business-admin/internal/room/repository"
	"business-admin/pkg/cache"
	"business-admin/pkg/log"
)

type implUseCase struct {
	repo  repository.Repository
	cache cache.Cache
	l     log.Logger
	newID func() string
}

// New creates the room UseCase covering room types and rooms.
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
