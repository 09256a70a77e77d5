package http

import (
	"business-admin/internal/listing"
	"business-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc listing.UseCase
}

func New(l log.Logger, uc listing.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
