package http

import (
	"business-admin/internal/room"
	"business-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc room.UseCase
}

// New creates the HTTP handler serving both /room-types and /rooms.
func New(l log.Logger, uc room.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
