package collection

import (
	"context"
	"sort"
)

// Load fetches the collection from the remote and replaces the local items.
// On failure the current items are kept and an error notification is sent.
func (c *Collection[F]) Load(ctx context.Context) error {
	err := c.load(ctx)
	if err != nil {
		c.notifyFailure(ctx, OpLoad, err)
	}
	return err
}

// load replaces the items without notifying, so callers that already reported
// a failure can reconcile silently.
func (c *Collection[F]) load(ctx context.Context) error {
	opCtx, done := c.scoped(ctx)
	defer done()

	fetched, err := c.remote.List(opCtx, c.parent)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if err != nil {
		return err
	}
	c.items = normalize(fetched)
	return nil
}

// normalize drops duplicate ids, sorts ascending by SortOrder keeping server order
// for ties and renumbers densely from zero.
func normalize[F any](in []Item[F]) []Item[F] {
	seen := make(map[string]struct{}, len(in))
	out := make([]Item[F], 0, len(in))
	for _, it := range in {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		if it.SortOrder < 0 {
			it.SortOrder = 0
		}
		out = append(out, it)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})
	for i := range out {
		out[i].SortOrder = i
	}
	return out
}
