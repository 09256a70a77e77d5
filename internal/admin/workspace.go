// Package admin binds the business collections to a signed-in session.
package admin

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"business-admin/pkg/apiclient"
	"business-admin/pkg/collection"
	"business-admin/pkg/form"
	"business-admin/pkg/log"
)

var ErrUnknownResource = errors.New("unknown resource")

// Workspace builds resources for one session.
type Workspace struct {
	s         *apiclient.Session
	l         log.Logger
	notifier  collection.Notifier
	confirmer collection.Confirmer
	perItem   bool
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithPerItemReorder persists reorders with one update per item.
func WithPerItemReorder() Option {
	return func(w *Workspace) { w.perItem = true }
}

// NewWorkspace creates a Workspace.
func NewWorkspace(s *apiclient.Session, l log.Logger, n collection.Notifier, cf collection.Confirmer, opts ...Option) *Workspace {
	if l == nil {
		l = log.NewNop()
	}
	w := &Workspace{s: s, l: l, notifier: n, confirmer: cf}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type builder func(w *Workspace, filters map[string]string) Resource

var resources = map[string]builder{
	"categories": func(w *Workspace, f map[string]string) Resource {
		return build(w, "categories", "/api/v1/categories", f, func(c CategoryFields) string { return c.Name })
	},
	"coupons": func(w *Workspace, f map[string]string) Resource {
		return build(w, "coupons", "/api/v1/coupons", f, func(c CouponFields) string { return c.Code },
			couponDiscountCap, couponValidity)
	},
	"room-types": func(w *Workspace, f map[string]string) Resource {
		return build(w, "room-types", "/api/v1/room-types", f, func(rt RoomTypeFields) string { return rt.Name })
	},
	"rooms": func(w *Workspace, f map[string]string) Resource {
		return build(w, "rooms", "/api/v1/rooms", f, func(r RoomFields) string { return "Room " + r.Number })
	},
	"listings": func(w *Workspace, f map[string]string) Resource {
		return build(w, "listings", "/api/v1/listings", f, func(l ListingFields) string { return l.Title })
	},
}

// Names lists the resources a Workspace can open.
func Names() []string {
	out := make([]string, 0, len(resources))
	for name := range resources {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resource opens the named collection. filters are sent with every list call,
// for example room_type_id for rooms.
func (w *Workspace) Resource(name string, filters map[string]string) (Resource, error) {
	b, ok := resources[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %s", ErrUnknownResource, name, strings.Join(Names(), ", "))
	}
	return b(w, filters), nil
}

func build[F any](w *Workspace, name, path string, filters map[string]string, label func(F) string, rules ...form.Rule[F]) Resource {
	var ropts []apiclient.RemoteOption
	for k, v := range filters {
		ropts = append(ropts, apiclient.WithFilter(k, v))
	}
	remote := apiclient.NewRemote[F](w.s, path, ropts...)

	copts := []collection.Option{
		collection.WithLogger(w.l),
		collection.WithNotifier(w.notifier),
		collection.WithConfirmer(w.confirmer),
		collection.WithContext(w.s.Context()),
	}
	if w.perItem {
		copts = append(copts, collection.WithPerItemReorder())
	}

	return &resource[F]{
		name:   name,
		remote: remote,
		coll:   collection.New[F](remote, w.s.TenantID(), copts...),
		rules:  rules,
		label:  label,
	}
}
