package collection_test

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"business-admin/pkg/collection"
	"business-admin/pkg/ordering"
)

type coupon struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

// fakeRemote is an in-memory Remote that records every call.
type fakeRemote struct {
	mu    sync.Mutex
	items []collection.Item[coupon]
	next  int
	calls map[string]int

	updatedIDs []string
	patches    []collection.Patch

	listErr      error
	createErr    error
	updateErr    error
	deleteErr    error
	failUpdateID string

	// createGate, when set, blocks Create until it is closed or ctx ends.
	createGate chan struct{}
}

func newFakeRemote(items ...collection.Item[coupon]) *fakeRemote {
	return &fakeRemote{items: items, calls: map[string]int{}}
}

func (f *fakeRemote) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRemote) List(ctx context.Context, parent string) ([]collection.Item[coupon], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]collection.Item[coupon], len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeRemote) Create(ctx context.Context, parent string, item collection.Item[coupon]) (collection.Item[coupon], error) {
	if f.createGate != nil {
		select {
		case <-f.createGate:
		case <-ctx.Done():
			return collection.Item[coupon]{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	if f.createErr != nil {
		return collection.Item[coupon]{}, f.createErr
	}
	f.next++
	item.ID = fmt.Sprintf("srv-%d", f.next)
	item.SortOrder = len(f.items)
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeRemote) Update(ctx context.Context, parent, id string, patch collection.Patch) (collection.Item[coupon], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	f.updatedIDs = append(f.updatedIDs, id)
	f.patches = append(f.patches, patch)
	if f.updateErr != nil || id == f.failUpdateID {
		return collection.Item[coupon]{}, errors.New("connection reset by peer")
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if patch.IsActive != nil {
			f.items[i].IsActive = *patch.IsActive
		}
		if patch.SortOrder != nil {
			f.items[i].SortOrder = *patch.SortOrder
		}
		if v, ok := patch.Fields["discount_value"].(float64); ok {
			f.items[i].Fields.DiscountValue = v
		}
		return f.items[i], nil
	}
	return collection.Item[coupon]{}, errors.New("not found")
}

func (f *fakeRemote) Delete(ctx context.Context, parent, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// batchRemote adds single-call reordering on top of fakeRemote.
type batchRemote struct {
	*fakeRemote
	reorderErr error
	positions  [][]ordering.Position
}

func (b *batchRemote) Reorder(ctx context.Context, parent string, positions []ordering.Position) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls["reorder"]++
	b.positions = append(b.positions, positions)
	if b.reorderErr != nil {
		return b.reorderErr
	}
	for _, p := range positions {
		for i := range b.items {
			if b.items[i].ID == p.ID {
				b.items[i].SortOrder = p.SortOrder
			}
		}
	}
	return nil
}

type recorder struct {
	mu    sync.Mutex
	notes []collection.Notification
}

func (r *recorder) Notify(ctx context.Context, n collection.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recorder) errors() []collection.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []collection.Notification
	for _, n := range r.notes {
		if n.Level == collection.LevelError {
			out = append(out, n)
		}
	}
	return out
}

type answer bool

func (a answer) Confirm(ctx context.Context, prompt string) (bool, error) { return bool(a), nil }

type rejection struct {
	msg     string
	details []string
}

func (r rejection) Error() string              { return r.msg }
func (r rejection) RejectionMessage() string   { return r.msg }
func (r rejection) RejectionDetails() []string { return r.details }

func item(id string, order int) collection.Item[coupon] {
	return collection.Item[coupon]{ID: id, SortOrder: order, IsActive: true, Fields: coupon{Code: id}}
}

func ids(items []collection.Item[coupon]) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func orders(items []collection.Item[coupon]) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.SortOrder
	}
	return out
}
