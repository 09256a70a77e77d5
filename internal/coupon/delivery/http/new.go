package http

import (
	"business-admin/internal/coupon"
	"business-admin/pkg/log"
)

type handler struct {
	l  log.Logger
	uc coupon.UseCase
}

func New(l log.Logger, uc coupon.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
