package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/collection"
	"business-admin/pkg/form"
)

type memRemote struct {
	items   []collection.Item[couponDraft]
	creates int
	patches []collection.Patch
}

func (m *memRemote) List(ctx context.Context, parent string) ([]collection.Item[couponDraft], error) {
	return m.items, nil
}

func (m *memRemote) Create(ctx context.Context, parent string, it collection.Item[couponDraft]) (collection.Item[couponDraft], error) {
	m.creates++
	it.ID = "srv-1"
	m.items = append(m.items, it)
	return it, nil
}

func (m *memRemote) Update(ctx context.Context, parent, id string, p collection.Patch) (collection.Item[couponDraft], error) {
	m.patches = append(m.patches, p)
	for _, it := range m.items {
		if it.ID == id {
			if code, ok := p.Fields["code"].(string); ok {
				it.Fields.Code = code
			}
			return it, nil
		}
	}
	return collection.Item[couponDraft]{}, collection.ErrNotFound
}

func (m *memRemote) Delete(ctx context.Context, parent, id string) error { return nil }

func TestForCollection(t *testing.T) {
	ctx := context.Background()
	remote := &memRemote{items: []collection.Item[couponDraft]{{ID: "a", Fields: couponDraft{Code: "OLD", DiscountType: "fixed", DiscountValue: 2}}}}
	coll := collection.New[couponDraft](remote, "biz-1")
	require.NoError(t, coll.Load(ctx))
	defer coll.Close()

	ctrl := form.NewController(form.ForCollection(coll))

	// missing code never reaches the remote
	require.NoError(t, ctrl.OpenForCreate(couponDraft{DiscountType: "fixed", DiscountValue: 1}))
	require.Error(t, ctrl.Submit(ctx))
	assert.Equal(t, 0, remote.creates)
	ctrl.Cancel()

	require.NoError(t, ctrl.OpenForCreate(couponDraft{Code: "NEW", DiscountType: "fixed", DiscountValue: 1}))
	require.NoError(t, ctrl.Submit(ctx))
	assert.Equal(t, 1, remote.creates)
	assert.Equal(t, 2, coll.Len())

	current, _ := coll.Get("a")
	require.NoError(t, ctrl.OpenForEdit("a", current.Fields))
	require.NoError(t, ctrl.Apply(map[string]string{"code": "RENAMED"}))
	require.NoError(t, ctrl.Submit(ctx))

	require.Len(t, remote.patches, 1)
	assert.Equal(t, "RENAMED", remote.patches[0].Fields["code"])
	updated, _ := coll.Get("a")
	assert.Equal(t, "RENAMED", updated.Fields.Code)
}
