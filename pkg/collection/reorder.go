package collection

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"business-admin/pkg/ordering"
)

// Reorder moves the item to targetIndex and renumbers every item densely.
// The new order is persisted in one batch call when the remote supports it,
// otherwise with one concurrent update per item. Any failure restores the
// previous order and reloads from the server. An item whose create has not
// settled cannot be moved and returns ErrPending.
func (c *Collection[F]) Reorder(ctx context.Context, id string, targetIndex int) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if _, ok := c.creating[id]; ok {
		c.mu.Unlock()
		return ErrPending
	}
	ids := make([]string, len(c.items))
	for i, it := range c.items {
		ids[i] = it.ID
	}
	from := ordering.IndexOf(ids, id)
	if from < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	moved, changed, err := ordering.Move(ids, from, targetIndex)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if !changed {
		c.mu.Unlock()
		return nil
	}

	// Items still being created are unknown to the server. They stay at the
	// tail and are left out of the persisted order.
	var persisted, pending []string
	for _, mid := range moved {
		if _, ok := c.creating[mid]; ok {
			pending = append(pending, mid)
			continue
		}
		persisted = append(persisted, mid)
	}
	newIDs := append(append([]string{}, persisted...), pending...)
	if slices.Equal(newIDs, ids) {
		c.mu.Unlock()
		return nil
	}

	snapshot := make([]Item[F], len(c.items))
	copy(snapshot, c.items)
	byID := make(map[string]Item[F], len(c.items))
	for _, it := range c.items {
		byID[it.ID] = it
	}
	reordered := make([]Item[F], len(newIDs))
	for i, nid := range newIDs {
		it := byID[nid]
		it.SortOrder = i
		reordered[i] = it
	}
	c.items = reordered
	seq := c.begin(OpReorder, id)
	c.mu.Unlock()

	opCtx, done := c.scoped(ctx)
	defer done()
	err = c.persistOrder(opCtx, ordering.Positions(persisted))

	c.mu.Lock()
	if c.closed {
		c.settle(seq, TxnRolledBack, "", ErrClosed)
		c.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		c.items = snapshot
		c.settle(seq, TxnRolledBack, "", err)
		c.mu.Unlock()

		c.notifyFailure(ctx, OpReorder, err)
		if loadErr := c.load(ctx); loadErr != nil {
			c.cfg.l.Warnf(ctx, "collection.reorder: reload after failure: %v", loadErr)
		}
		return err
	}
	c.settle(seq, TxnCommitted, "", nil)
	c.mu.Unlock()

	return nil
}

// MoveUp swaps the item with its predecessor. The first item is left alone.
func (c *Collection[F]) MoveUp(ctx context.Context, id string) error {
	return c.step(ctx, id, -1)
}

// MoveDown swaps the item with its successor. The last item is left alone.
func (c *Collection[F]) MoveDown(ctx context.Context, id string) error {
	return c.step(ctx, id, 1)
}

func (c *Collection[F]) step(ctx context.Context, id string, delta int) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	n := len(c.items)
	c.mu.Unlock()

	if idx < 0 {
		return ErrNotFound
	}
	target := idx + delta
	if target < 0 || target >= n {
		return nil
	}
	return c.Reorder(ctx, id, target)
}

func (c *Collection[F]) persistOrder(ctx context.Context, positions []ordering.Position) error {
	if br, ok := c.remote.(BatchReorderer); ok && !c.cfg.perItemReorder {
		return br.Reorder(ctx, c.parent, positions)
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, p := range positions {
		p := p
		g.Go(func() error {
			order := p.SortOrder
			if _, err := c.remote.Update(ctx, c.parent, p.ID, Patch{SortOrder: &order}); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
