package http

import (
	"business-admin/internal/category"
	"business-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc category.UseCase
}

// New creates the HTTP handler of the category domain.
func New(l log.Logger, uc category.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
