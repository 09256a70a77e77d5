package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"

	"business-admin/pkg/collection"
	"business-admin/pkg/ordering"
)

var (
	_ collection.Remote[struct{}] = (*Remote[struct{}])(nil)
	_ collection.BatchReorderer   = (*Remote[struct{}])(nil)
)

// itemMeta is the part of every record the collection core cares about.
type itemMeta struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// Remote exposes one REST collection as collection.Remote. F is decoded from the
// same flat JSON object as the id, sort_order and is_active attributes.
type Remote[F any] struct {
	s     *Session
	path  string
	query url.Values
}

// RemoteOption configures a Remote.
type RemoteOption func(*remoteConfig)

type remoteConfig struct {
	query url.Values
}

// WithFilter adds a query parameter to every List call.
func WithFilter(key, value string) RemoteOption {
	return func(c *remoteConfig) {
		if value != "" {
			c.query.Set(key, value)
		}
	}
}

// NewRemote binds a collection path such as "/api/v1/coupons" to s.
func NewRemote[F any](s *Session, path string, opts ...RemoteOption) *Remote[F] {
	cfg := remoteConfig{query: url.Values{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Remote[F]{s: s, path: path, query: cfg.query}
}

func (r *Remote[F]) List(ctx context.Context, parent string) ([]collection.Item[F], error) {
	var raw []json.RawMessage
	err := r.s.call(ctx, parent, http.MethodGet, r.path, func(req *resty.Request) {
		if len(r.query) > 0 {
			req.SetQueryParamsFromValues(r.query)
		}
	}, &raw)
	if err != nil {
		return nil, err
	}

	items := make([]collection.Item[F], 0, len(raw))
	for _, obj := range raw {
		it, err := decodeItem[F](obj)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *Remote[F]) Get(ctx context.Context, parent, id string) (collection.Item[F], error) {
	var raw json.RawMessage
	if err := r.s.call(ctx, parent, http.MethodGet, r.itemPath(id), nil, &raw); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return collection.Item[F]{}, collection.ErrNotFound
		}
		return collection.Item[F]{}, err
	}
	return decodeItem[F](raw)
}

func (r *Remote[F]) Create(ctx context.Context, parent string, item collection.Item[F]) (collection.Item[F], error) {
	body, err := fieldMap(item.Fields)
	if err != nil {
		return collection.Item[F]{}, err
	}
	body["is_active"] = item.IsActive

	var raw json.RawMessage
	if err := r.s.call(ctx, parent, http.MethodPost, r.path, func(req *resty.Request) {
		req.SetBody(body)
	}, &raw); err != nil {
		return collection.Item[F]{}, err
	}
	return decodeItem[F](raw)
}

func (r *Remote[F]) Update(ctx context.Context, parent, id string, patch collection.Patch) (collection.Item[F], error) {
	body := make(map[string]any, len(patch.Fields)+2)
	for k, v := range patch.Fields {
		body[k] = v
	}
	if patch.SortOrder != nil {
		body["sort_order"] = *patch.SortOrder
	}
	if patch.IsActive != nil {
		body["is_active"] = *patch.IsActive
	}

	var raw json.RawMessage
	if err := r.s.call(ctx, parent, http.MethodPut, r.itemPath(id), func(req *resty.Request) {
		req.SetBody(body)
	}, &raw); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return collection.Item[F]{}, fmt.Errorf("%w: %w", collection.ErrNotFound, err)
		}
		return collection.Item[F]{}, err
	}
	return decodeItem[F](raw)
}

func (r *Remote[F]) Delete(ctx context.Context, parent, id string) error {
	return r.s.call(ctx, parent, http.MethodDelete, r.itemPath(id), nil, nil)
}

// Reorder persists the whole ordering in one call. List filters are sent along
// so the server validates against the same subset that was loaded.
func (r *Remote[F]) Reorder(ctx context.Context, parent string, positions []ordering.Position) error {
	return r.s.call(ctx, parent, http.MethodPut, r.path+"/reorder", func(req *resty.Request) {
		if len(r.query) > 0 {
			req.SetQueryParamsFromValues(r.query)
		}
		req.SetBody(map[string]any{"items": positions})
	}, nil)
}

// Export streams the collection's spreadsheet export into w.
func (r *Remote[F]) Export(ctx context.Context, parent string, w io.Writer) error {
	rctx, done, err := r.s.bind(ctx)
	if err != nil {
		return err
	}
	defer done()

	resp, err := r.s.request(rctx, parent).Get(r.path + "/export")
	if err != nil {
		return fmt.Errorf("apiclient: export %s: %w", r.path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return decode(resp, nil)
	}
	_, err = w.Write(resp.Body())
	return err
}

func (r *Remote[F]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func decodeItem[F any](raw json.RawMessage) (collection.Item[F], error) {
	var meta itemMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return collection.Item[F]{}, fmt.Errorf("apiclient: decode item: %w", err)
	}
	var fields F
	if err := json.Unmarshal(raw, &fields); err != nil {
		return collection.Item[F]{}, fmt.Errorf("apiclient: decode fields: %w", err)
	}
	return collection.Item[F]{ID: meta.ID, SortOrder: meta.SortOrder, IsActive: meta.IsActive, Fields: fields}, nil
}

func fieldMap(fields any) (map[string]any, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("apiclient: encode fields: %w", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("apiclient: encode fields: %w", err)
	}
	return out, nil
}
