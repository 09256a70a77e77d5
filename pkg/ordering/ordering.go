// Package ordering holds the dense sort-order arithmetic shared by the API and the client.
package ordering

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmpty        = errors.New("positions are empty")
	ErrDuplicateID  = errors.New("duplicate id in positions")
	ErrUnknownID    = errors.New("unknown id in positions")
	ErrIncomplete   = errors.New("positions do not cover every item")
	ErrNotDense     = errors.New("sort orders must be dense and zero-based")
	ErrOutOfBounds  = errors.New("index out of bounds")
	ErrNoSuchTarget = errors.New("id not found")
)

// Position pairs an item id with its zero-based sort order.
type Position struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

// IndexOf returns the index of id in ids, or -1.
func IndexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Move returns a copy of ids where the element at from is reinserted at to.
// changed is false when from == to.
func Move(ids []string, from, to int) (out []string, changed bool, err error) {
	n := len(ids)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, false, ErrOutOfBounds
	}
	out = make([]string, n)
	copy(out, ids)
	if from == to {
		return out, false, nil
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, true, nil
}

// Positions renumbers ids densely in their current order.
func Positions(ids []string) []Position {
	out := make([]Position, len(ids))
	for i, id := range ids {
		out[i] = Position{ID: id, SortOrder: i}
	}
	return out
}

// Validate checks that positions name every id in existing exactly once
// and that the sort orders are exactly 0..n-1.
func Validate(positions []Position, existing []string) error {
	if len(positions) == 0 {
		return ErrEmpty
	}

	known := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		known[id] = struct{}{}
	}

	seenIDs := make(map[string]struct{}, len(positions))
	seenOrders := make([]bool, len(positions))
	for _, p := range positions {
		if _, dup := seenIDs[p.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seenIDs[p.ID] = struct{}{}

		if _, ok := known[p.ID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownID, p.ID)
		}
		if p.SortOrder < 0 || p.SortOrder >= len(positions) || seenOrders[p.SortOrder] {
			return ErrNotDense
		}
		seenOrders[p.SortOrder] = true
	}

	if len(seenIDs) != len(known) {
		return ErrIncomplete
	}
	return nil
}

// Sort orders positions ascending by SortOrder. Ties keep their input order.
func Sort(positions []Position) {
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].SortOrder < positions[j].SortOrder
	})
}
