package form

import (
	"context"
	"encoding/json"

	"business-admin/pkg/collection"
)

type collectionSubmitter[F any] struct {
	c *collection.Collection[F]
}

// ForCollection submits creates and full-field updates to c's optimistic mutator.
func ForCollection[F any](c *collection.Collection[F]) Submitter[F] {
	return collectionSubmitter[F]{c: c}
}

func (s collectionSubmitter[F]) SubmitCreate(ctx context.Context, draft F) error {
	_, err := s.c.Create(ctx, draft)
	return err
}

func (s collectionSubmitter[F]) SubmitUpdate(ctx context.Context, id string, draft F) error {
	fields, err := toFieldMap(draft)
	if err != nil {
		return err
	}
	_, err = s.c.Update(ctx, id, collection.Patch{Fields: fields})
	return err
}

func toFieldMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
