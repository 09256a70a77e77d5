package collection

import (
	"context"
	"fmt"
)

// Create appends an optimistic item with a temporary id, then swaps in the server's
// record. On failure the optimistic entry is removed.
func (c *Collection[F]) Create(ctx context.Context, fields F) (Item[F], error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Item[F]{}, ErrClosed
	}
	tempID := c.cfg.tempID()
	optimistic := Item[F]{ID: tempID, SortOrder: len(c.items), IsActive: true, Fields: fields}
	c.items = append(c.items, optimistic)
	seq := c.begin(OpCreate, tempID)
	c.creating[tempID] = struct{}{}
	c.mu.Unlock()

	opCtx, done := c.scoped(ctx)
	defer done()
	created, err := c.remote.Create(opCtx, c.parent, optimistic)

	c.mu.Lock()
	delete(c.creating, tempID)
	if c.closed {
		c.settle(seq, TxnRolledBack, "", ErrClosed)
		c.mu.Unlock()
		return Item[F]{}, ErrClosed
	}
	idx := c.indexOf(tempID)
	if err != nil {
		if idx >= 0 {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			c.renumber(idx)
		}
		c.settle(seq, TxnRolledBack, "", err)
		c.mu.Unlock()
		c.notifyFailure(ctx, OpCreate, err)
		return Item[F]{}, err
	}
	if idx >= 0 {
		c.items[idx] = created
	} else {
		// a Load replaced the list while the call was in flight and may already hold it
		if c.indexOf(created.ID) < 0 {
			c.items = append(c.items, created)
		}
	}
	c.settle(seq, TxnCommitted, created.ID, nil)
	c.mu.Unlock()

	return created, nil
}

// Update merges patch into the item before the call resolves. On failure the item
// is restored to its snapshot.
func (c *Collection[F]) Update(ctx context.Context, id string, patch Patch) (Item[F], error) {
	return c.update(ctx, OpUpdate, id, func(Item[F]) Patch { return patch })
}

// ToggleActive flips IsActive with the same contract as Update.
func (c *Collection[F]) ToggleActive(ctx context.Context, id string) (Item[F], error) {
	return c.update(ctx, OpToggle, id, func(cur Item[F]) Patch {
		next := !cur.IsActive
		return Patch{IsActive: &next}
	})
}

func (c *Collection[F]) update(ctx context.Context, op Op, id string, build func(Item[F]) Patch) (Item[F], error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Item[F]{}, ErrClosed
	}
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return Item[F]{}, ErrNotFound
	}
	snapshot := c.items[idx]
	patch := build(snapshot)
	merged, err := applyPatch(snapshot, patch)
	if err != nil {
		c.mu.Unlock()
		return Item[F]{}, fmt.Errorf("merge patch: %w", err)
	}
	c.items[idx] = merged
	seq := c.begin(op, id)
	c.mu.Unlock()

	opCtx, done := c.scoped(ctx)
	defer done()
	updated, err := c.remote.Update(opCtx, c.parent, id, patch)

	c.mu.Lock()
	if c.closed {
		c.settle(seq, TxnRolledBack, "", ErrClosed)
		c.mu.Unlock()
		return Item[F]{}, ErrClosed
	}
	idx = c.indexOf(id)
	if err != nil {
		if idx >= 0 {
			c.items[idx] = snapshot
		}
		c.settle(seq, TxnRolledBack, "", err)
		c.mu.Unlock()
		c.notifyFailure(ctx, op, err)
		return Item[F]{}, err
	}
	if idx >= 0 {
		// keep the local position; the server's sort order is authoritative only on Load
		updated.SortOrder = c.items[idx].SortOrder
		c.items[idx] = updated
	}
	c.settle(seq, TxnCommitted, "", nil)
	c.mu.Unlock()

	return updated, nil
}

// Delete asks for confirmation, then removes the item once the server confirms.
// A declined prompt returns ErrDeclined without any call.
func (c *Collection[F]) Delete(ctx context.Context, id string, label string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.indexOf(id) < 0 {
		c.mu.Unlock()
		return ErrNotFound
	}
	c.mu.Unlock()

	if label == "" {
		label = id
	}
	ok, err := c.cfg.confirmer.Confirm(ctx, fmt.Sprintf("Delete %q? This cannot be undone.", label))
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}

	c.mu.Lock()
	seq := c.begin(OpDelete, id)
	c.mu.Unlock()

	opCtx, done := c.scoped(ctx)
	defer done()
	err = c.remote.Delete(opCtx, c.parent, id)

	c.mu.Lock()
	if c.closed {
		c.settle(seq, TxnRolledBack, "", ErrClosed)
		c.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		c.settle(seq, TxnRolledBack, "", err)
		c.mu.Unlock()
		c.notifyFailure(ctx, OpDelete, err)
		return err
	}
	if idx := c.indexOf(id); idx >= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		c.renumber(idx)
	}
	c.settle(seq, TxnCommitted, "", nil)
	c.mu.Unlock()

	c.notifyInfo(ctx, OpDelete, fmt.Sprintf("Deleted %s.", label))
	return nil
}
