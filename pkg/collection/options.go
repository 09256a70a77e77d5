package collection

import (
	"context"

	"github.com/google/uuid"

	"business-admin/pkg/log"
)

type config struct {
	l              log.Logger
	notifier       Notifier
	confirmer      Confirmer
	tempID         func() string
	perItemReorder bool
	parentCtx      context.Context
	journalSize    int
}

// Option configures a Collection.
type Option func(*config)

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *config) { c.l = l }
}

// WithNotifier sets where user-visible notifications go.
func WithNotifier(n Notifier) Option {
	return func(c *config) { c.notifier = n }
}

// WithConfirmer sets the prompt used before deletes. Without one every delete is declined.
func WithConfirmer(cf Confirmer) Option {
	return func(c *config) { c.confirmer = cf }
}

// WithTempIDs overrides the generator for optimistic ids.
func WithTempIDs(gen func() string) Option {
	return func(c *config) { c.tempID = gen }
}

// WithPerItemReorder persists reorders with one update per item even when the
// remote supports batch reordering.
func WithPerItemReorder() Option {
	return func(c *config) { c.perItemReorder = true }
}

// WithContext ties the collection's lifetime to ctx, usually the session's.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.parentCtx = ctx }
}

func defaultConfig() config {
	return config{
		l:           log.NewNop(),
		notifier:    discardNotifier{},
		confirmer:   declineAll{},
		tempID:      func() string { return "tmp-" + uuid.NewString() },
		parentCtx:   context.Background(),
		journalSize: 128,
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, Notification) {}

type declineAll struct{}

func (declineAll) Confirm(context.Context, string) (bool, error) { return false, nil }
