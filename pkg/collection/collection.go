// Package collection keeps an ordered, tenant-scoped list of items in sync with a remote
// CRUD API. Mutations are applied locally first and reconciled when the call settles.
package collection

import (
	"context"
	"errors"
	"sync"
)

// Collection is safe for concurrent use. Concurrent mutations are not serialized
// against each other; the last local write wins until the next Load.
type Collection[F any] struct {
	remote Remote[F]
	parent string
	cfg    config

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	items   []Item[F]
	closed  bool
	seq     uint64
	journal []Txn
	// creating holds temporary ids of creates the server has not confirmed.
	creating map[string]struct{}
}

// New creates an empty collection for parent. Call Load to populate it.
func New[F any](remote Remote[F], parent string, opts ...Option) *Collection[F] {
	if remote == nil {
		panic("collection: remote is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, cancel := context.WithCancel(cfg.parentCtx)
	return &Collection[F]{
		remote:   remote,
		parent:   parent,
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
		creating: map[string]struct{}{},
	}
}

// Parent returns the tenant key the collection is scoped to.
func (c *Collection[F]) Parent() string { return c.parent }

// Items returns a copy of the items in display order.
func (c *Collection[F]) Items() []Item[F] {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item[F], len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the item with id.
func (c *Collection[F]) Get(id string) (Item[F], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return Item[F]{}, false
}

// Len returns the number of items.
func (c *Collection[F]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Close cancels in-flight calls. Responses that settle afterwards are dropped.
func (c *Collection[F]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

// Journal returns the most recent transactions, oldest first.
func (c *Collection[F]) Journal() []Txn {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Txn, len(c.journal))
	copy(out, c.journal)
	return out
}

// Pending returns the transactions that have not settled yet.
func (c *Collection[F]) Pending() []Txn {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Txn
	for _, t := range c.journal {
		if t.State == TxnPending {
			out = append(out, t)
		}
	}
	return out
}

// scoped derives a context cancelled by either the caller or Close.
func (c *Collection[F]) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	opCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.ctx, cancel)
	return opCtx, func() {
		stop()
		cancel()
	}
}

// indexOf must be called with mu held.
func (c *Collection[F]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// renumber must be called with mu held.
func (c *Collection[F]) renumber(from int) {
	for i := from; i < len(c.items); i++ {
		c.items[i].SortOrder = i
	}
}

// begin must be called with mu held.
func (c *Collection[F]) begin(op Op, itemID string) uint64 {
	c.seq++
	c.journal = append(c.journal, Txn{Seq: c.seq, Op: op, ItemID: itemID, State: TxnPending})
	if over := len(c.journal) - c.cfg.journalSize; over > 0 {
		c.journal = append([]Txn(nil), c.journal[over:]...)
	}
	return c.seq
}

// settle must be called with mu held.
func (c *Collection[F]) settle(seq uint64, state TxnState, itemID string, err error) {
	for i := range c.journal {
		if c.journal[i].Seq == seq {
			c.journal[i].State = state
			c.journal[i].Err = err
			if itemID != "" {
				c.journal[i].ItemID = itemID
			}
			c.cfg.l.Debugf(c.ctx, "collection.%s: txn %d %s (item %s)", c.journal[i].Op, seq, state, c.journal[i].ItemID)
			return
		}
	}
}

func (c *Collection[F]) notifyFailure(ctx context.Context, op Op, err error) {
	if errors.Is(err, ErrClosed) {
		return
	}

	n := Notification{Level: LevelError, Op: op, Err: err}
	var rej Rejection
	if errors.As(err, &rej) {
		n.Message = rej.RejectionMessage()
		n.Details = rej.RejectionDetails()
	} else {
		n.Message = genericFailure[op]
	}

	c.cfg.l.Warnf(ctx, "collection.%s: %v", op, err)
	c.cfg.notifier.Notify(ctx, n)
}

func (c *Collection[F]) notifyInfo(ctx context.Context, op Op, msg string) {
	c.cfg.notifier.Notify(ctx, Notification{Level: LevelInfo, Op: op, Message: msg})
}

var genericFailure = map[Op]string{
	OpLoad:    "Could not load items. Please try again.",
	OpCreate:  "Could not create the item. Please try again.",
	OpUpdate:  "Could not save changes. Please try again.",
	OpToggle:  "Could not change the status. Please try again.",
	OpDelete:  "Could not delete the item. Please try again.",
	OpReorder: "Could not save the new order. The list was reloaded.",
}
