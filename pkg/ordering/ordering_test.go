package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/ordering"
)

func TestMove(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	tests := []struct {
		name     string
		from, to int
		want     []string
		changed  bool
	}{
		{"last to first", 3, 0, []string{"d", "a", "b", "c"}, true},
		{"first to last", 0, 3, []string{"b", "c", "d", "a"}, true},
		{"middle down", 1, 2, []string{"a", "c", "b", "d"}, true},
		{"middle up", 2, 1, []string{"a", "c", "b", "d"}, true},
		{"onto itself", 2, 2, []string{"a", "b", "c", "d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed, err := ordering.Move(ids, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids, "input must not be mutated")

	_, _, err := ordering.Move(ids, 0, 4)
	assert.ErrorIs(t, err, ordering.ErrOutOfBounds)
	_, _, err = ordering.Move(ids, -1, 0)
	assert.ErrorIs(t, err, ordering.ErrOutOfBounds)
}

func TestPositions(t *testing.T) {
	got := ordering.Positions([]string{"c", "a", "b"})
	assert.Equal(t, []ordering.Position{{ID: "c", SortOrder: 0}, {ID: "a", SortOrder: 1}, {ID: "b", SortOrder: 2}}, got)
}

func TestValidate(t *testing.T) {
	existing := []string{"a", "b", "c"}

	assert.NoError(t, ordering.Validate(ordering.Positions([]string{"c", "a", "b"}), existing))

	assert.ErrorIs(t, ordering.Validate(nil, existing), ordering.ErrEmpty)
	assert.ErrorIs(t, ordering.Validate([]ordering.Position{{"a", 0}, {"a", 1}, {"b", 2}}, existing), ordering.ErrDuplicateID)
	assert.ErrorIs(t, ordering.Validate([]ordering.Position{{"a", 0}, {"x", 1}, {"b", 2}}, existing), ordering.ErrUnknownID)
	assert.ErrorIs(t, ordering.Validate([]ordering.Position{{"a", 0}, {"b", 1}}, existing), ordering.ErrIncomplete)
	assert.ErrorIs(t, ordering.Validate([]ordering.Position{{"a", 0}, {"b", 2}, {"c", 3}}, existing), ordering.ErrNotDense)
	assert.ErrorIs(t, ordering.Validate([]ordering.Position{{"a", 0}, {"b", 0}, {"c", 1}}, existing), ordering.ErrNotDense)
}

func TestSortIsStable(t *testing.T) {
	ps := []ordering.Position{{"x", 1}, {"y", 0}, {"z", 1}}
	ordering.Sort(ps)
	assert.Equal(t, []ordering.Position{{"y", 0}, {"x", 1}, {"z", 1}}, ps)
}
