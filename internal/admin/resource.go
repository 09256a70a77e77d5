package admin

import (
	"context"
	"encoding/json"
	"io"

	"business-admin/pkg/apiclient"
	"business-admin/pkg/collection"
	"business-admin/pkg/form"
)

// Row is a type-erased view of one item, used by the console front end.
type Row struct {
	ID        string
	SortOrder int
	IsActive  bool
	Label     string
	Fields    map[string]any
}

// Resource is one managed collection with its form rules attached.
type Resource interface {
	Name() string
	Load(ctx context.Context) error
	Rows() []Row
	Create(ctx context.Context, values map[string]string) (Row, error)
	Update(ctx context.Context, id string, values map[string]string) (Row, error)
	Toggle(ctx context.Context, id string) (Row, error)
	Delete(ctx context.Context, id string) error
	Move(ctx context.Context, id string, index int) error
	MoveUp(ctx context.Context, id string) error
	MoveDown(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer) error
	Close()
}

type resource[F any] struct {
	name   string
	remote *apiclient.Remote[F]
	coll   *collection.Collection[F]
	rules  []form.Rule[F]
	label  func(F) string
}

func (r *resource[F]) Name() string { return r.name }

func (r *resource[F]) Load(ctx context.Context) error { return r.coll.Load(ctx) }

func (r *resource[F]) Close() { r.coll.Close() }

func (r *resource[F]) Rows() []Row {
	items := r.coll.Items()
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, r.row(it))
	}
	return rows
}

func (r *resource[F]) Create(ctx context.Context, values map[string]string) (Row, error) {
	ctrl := form.NewController(form.ForCollection(r.coll), r.rules...)
	var zero F
	if err := ctrl.OpenForCreate(zero); err != nil {
		return Row{}, err
	}
	if err := ctrl.Apply(values); err != nil {
		return Row{}, err
	}
	if err := ctrl.Submit(ctx); err != nil {
		return Row{}, err
	}
	items := r.coll.Items()
	return r.row(items[len(items)-1]), nil
}

func (r *resource[F]) Update(ctx context.Context, id string, values map[string]string) (Row, error) {
	current, ok := r.coll.Get(id)
	if !ok {
		return Row{}, collection.ErrNotFound
	}
	ctrl := form.NewController(form.ForCollection(r.coll), r.rules...)
	if err := ctrl.OpenForEdit(id, current.Fields); err != nil {
		return Row{}, err
	}
	if err := ctrl.Apply(values); err != nil {
		return Row{}, err
	}
	if err := ctrl.Submit(ctx); err != nil {
		return Row{}, err
	}
	updated, _ := r.coll.Get(id)
	return r.row(updated), nil
}

func (r *resource[F]) Toggle(ctx context.Context, id string) (Row, error) {
	it, err := r.coll.ToggleActive(ctx, id)
	if err != nil {
		return Row{}, err
	}
	return r.row(it), nil
}

func (r *resource[F]) Delete(ctx context.Context, id string) error {
	label := id
	if it, ok := r.coll.Get(id); ok {
		label = r.label(it.Fields)
	}
	return r.coll.Delete(ctx, id, label)
}

func (r *resource[F]) Move(ctx context.Context, id string, index int) error {
	return r.coll.Reorder(ctx, id, index)
}

func (r *resource[F]) MoveUp(ctx context.Context, id string) error { return r.coll.MoveUp(ctx, id) }

func (r *resource[F]) MoveDown(ctx context.Context, id string) error {
	return r.coll.MoveDown(ctx, id)
}

func (r *resource[F]) Export(ctx context.Context, w io.Writer) error {
	return r.remote.Export(ctx, r.coll.Parent(), w)
}

func (r *resource[F]) row(it collection.Item[F]) Row {
	fields := map[string]any{}
	if raw, err := json.Marshal(it.Fields); err == nil {
		_ = json.Unmarshal(raw, &fields)
	}
	return Row{
		ID:        it.ID,
		SortOrder: it.SortOrder,
		IsActive:  it.IsActive,
		Label:     r.label(it.Fields),
		Fields:    fields,
	}
}
