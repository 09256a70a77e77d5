package form_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/form"
)

type couponDraft struct {
	Code          string     `json:"code" validate:"required"`
	DiscountType  string     `json:"discount_type" validate:"required,oneof=percentage fixed"`
	DiscountValue float64    `json:"discount_value" validate:"gt=0"`
	Tags          []string   `json:"tags"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
}

type fakeSubmitter struct {
	mu      sync.Mutex
	creates []couponDraft
	updates map[string]couponDraft
	err     error
	gate    chan struct{}
}

func (f *fakeSubmitter) SubmitCreate(ctx context.Context, d couponDraft) error {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.creates = append(f.creates, d)
	return nil
}

func (f *fakeSubmitter) SubmitUpdate(ctx context.Context, id string, d couponDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.updates == nil {
		f.updates = map[string]couponDraft{}
	}
	f.updates[id] = d
	return nil
}

func percentCap(d couponDraft) error {
	if d.DiscountType == "percentage" && d.DiscountValue > 100 {
		return form.Invalid("discount_value", "discount_value cannot exceed 100 for percentage coupons")
	}
	return nil
}

func TestSubmitCreate(t *testing.T) {
	sub := &fakeSubmitter{}
	c := form.NewController[couponDraft](sub, percentCap)

	require.NoError(t, c.OpenForCreate(couponDraft{DiscountType: "percentage"}))
	assert.Equal(t, form.StateOpenForCreate, c.State())

	require.NoError(t, c.Apply(map[string]string{"code": "SAVE10", "discount_value": " 10 "}))
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, form.StateClosed, c.State())
	require.Len(t, sub.creates, 1)
	assert.Equal(t, "SAVE10", sub.creates[0].Code)
	assert.Equal(t, 10.0, sub.creates[0].DiscountValue)
}

func TestSubmitBlocksOnFirstViolation(t *testing.T) {
	tests := []struct {
		name  string
		draft couponDraft
		field string
		msg   string
	}{
		{"missing code", couponDraft{DiscountType: "fixed", DiscountValue: 5}, "code", "code is required"},
		{"bad type", couponDraft{Code: "X", DiscountType: "bogus", DiscountValue: 5}, "discount_type", "discount_type must be one of: percentage, fixed"},
		{"non positive", couponDraft{Code: "X", DiscountType: "fixed"}, "discount_value", "discount_value must be positive"},
		{"custom rule", couponDraft{Code: "X", DiscountType: "percentage", DiscountValue: 150}, "discount_value", "discount_value cannot exceed 100 for percentage coupons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{}
			c := form.NewController[couponDraft](sub, percentCap)
			require.NoError(t, c.OpenForCreate(tt.draft))

			err := c.Submit(context.Background())

			var verr *form.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.msg, verr.Message)
			assert.Empty(t, sub.creates, "no submission on validation failure")
			assert.Equal(t, form.StateOpenForCreate, c.State())
		})
	}
}

func TestApplyCoercion(t *testing.T) {
	c := form.NewController[couponDraft](&fakeSubmitter{})
	require.NoError(t, c.OpenForCreate(couponDraft{}))

	require.NoError(t, c.Apply(map[string]string{
		"discount_value": "12.5",
		"tags":           "summer,vip",
		"valid_to":       "2026-12-31",
	}))
	d := c.Draft()
	assert.Equal(t, 12.5, d.DiscountValue)
	assert.Equal(t, []string{"summer", "vip"}, d.Tags)
	require.NotNil(t, d.ValidTo)
	assert.Equal(t, 2026, d.ValidTo.Year())

	err := c.Apply(map[string]string{"discount_value": "ten"})
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "discount_value", verr.Field)

	err = c.Apply(map[string]string{"colour": "red"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "colour is not a field of this form", verr.Message)
}

func TestEditDraftIsIsolated(t *testing.T) {
	sub := &fakeSubmitter{}
	c := form.NewController[couponDraft](sub)

	committed := couponDraft{Code: "A", DiscountType: "fixed", DiscountValue: 3, Tags: []string{"x"}}
	require.NoError(t, c.OpenForEdit("id-1", committed))
	require.NoError(t, c.Edit(func(d *couponDraft) {
		d.Code = "B"
		d.Tags[0] = "changed"
	}))

	assert.Equal(t, "A", committed.Code)
	assert.Equal(t, []string{"x"}, committed.Tags)
	assert.Equal(t, "id-1", c.ID())

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, "B", sub.updates["id-1"].Code)
	assert.Equal(t, form.StateClosed, c.State())
}

func TestCancelDiscards(t *testing.T) {
	sub := &fakeSubmitter{}
	c := form.NewController[couponDraft](sub)
	require.NoError(t, c.OpenForEdit("id-1", couponDraft{Code: "A"}))

	c.Cancel()

	assert.Equal(t, form.StateClosed, c.State())
	assert.Equal(t, couponDraft{}, c.Draft())
	assert.ErrorIs(t, c.Submit(context.Background()), form.ErrNotOpen)
	assert.ErrorIs(t, c.Edit(func(*couponDraft) {}), form.ErrNotOpen)
	assert.Empty(t, sub.updates)
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("network down")}
	c := form.NewController[couponDraft](sub)
	require.NoError(t, c.OpenForEdit("id-1", couponDraft{Code: "A", DiscountType: "fixed", DiscountValue: 1}))

	err := c.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, form.StateOpenForEdit, c.State())
	assert.Equal(t, "A", c.Draft().Code)
	assert.Equal(t, err, c.LastError())

	sub.err = nil
	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, form.StateClosed, c.State())
}

func TestDuplicateSubmitRejected(t *testing.T) {
	sub := &fakeSubmitter{gate: make(chan struct{})}
	c := form.NewController[couponDraft](sub)
	require.NoError(t, c.OpenForCreate(couponDraft{Code: "A", DiscountType: "fixed", DiscountValue: 1}))

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	require.Eventually(t, c.Saving, time.Second, 5*time.Millisecond)
	assert.Equal(t, form.StateSubmitting, c.State())
	assert.ErrorIs(t, c.Submit(context.Background()), form.ErrAlreadySaving)
	assert.ErrorIs(t, c.OpenForCreate(couponDraft{}), form.ErrAlreadySaving)

	close(sub.gate)
	require.NoError(t, <-done)
	assert.Len(t, sub.creates, 1)
}
