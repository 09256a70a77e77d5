package collection

import "encoding/json"

// applyPatch returns item with patch merged in. Domain fields are merged by JSON name.
func applyPatch[F any](item Item[F], patch Patch) (Item[F], error) {
	out := item
	if patch.SortOrder != nil {
		out.SortOrder = *patch.SortOrder
	}
	if patch.IsActive != nil {
		out.IsActive = *patch.IsActive
	}
	if len(patch.Fields) == 0 {
		return out, nil
	}

	raw, err := json.Marshal(item.Fields)
	if err != nil {
		return item, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return item, err
	}
	for k, v := range patch.Fields {
		fields[k] = v
	}

	raw, err = json.Marshal(fields)
	if err != nil {
		return item, err
	}
	var merged F
	if err := json.Unmarshal(raw, &merged); err != nil {
		return item, err
	}
	out.Fields = merged
	return out, nil
}
