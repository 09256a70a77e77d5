package http

import (
	"business-admin/internal/upload"
	"business-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc upload.UseCase
}

func New(l log.Logger, uc upload.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
