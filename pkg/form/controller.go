// Package form holds the edit-buffer state machine that sits in front of a collection.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/tiendc/go-deepcopy"
)

// Controller owns one draft at a time. The draft is a deep copy, so editing it
// never touches the committed item until Submit succeeds.
type Controller[F any] struct {
	submit   Submitter[F]
	validate *validator.Validate
	rules    []Rule[F]

	mu      sync.Mutex
	state   State
	id      string
	draft   F
	saving  bool
	lastErr error
}

// NewController creates a closed controller.
func NewController[F any](submit Submitter[F], rules ...Rule[F]) *Controller[F] {
	if submit == nil {
		panic("form: submitter is required")
	}
	return &Controller[F]{
		submit:   submit,
		validate: newValidator(),
		rules:    rules,
	}
}

// OpenForCreate starts a new draft seeded with initial.
func (c *Controller[F]) OpenForCreate(initial F) error {
	return c.open(StateOpenForCreate, "", initial)
}

// OpenForEdit starts a draft for id seeded with a deep copy of current.
func (c *Controller[F]) OpenForEdit(id string, current F) error {
	if id == "" {
		return errors.New("form: id is required for edit")
	}
	return c.open(StateOpenForEdit, id, current)
}

func (c *Controller[F]) open(state State, id string, seed F) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return ErrAlreadySaving
	}
	var draft F
	if err := deepcopy.Copy(&draft, seed); err != nil {
		return fmt.Errorf("form: copy draft: %w", err)
	}
	c.state = state
	c.id = id
	c.draft = draft
	c.lastErr = nil
	return nil
}

// State returns the current state.
func (c *Controller[F]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ID returns the id being edited, or "" for a create form.
func (c *Controller[F]) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Saving reports whether a submission is in flight.
func (c *Controller[F]) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// LastError returns the error of the last failed Submit, if any.
func (c *Controller[F]) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Draft returns a copy of the draft.
func (c *Controller[F]) Draft() F {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out F
	_ = deepcopy.Copy(&out, c.draft)
	return out
}

// Edit mutates the draft in place.
func (c *Controller[F]) Edit(fn func(draft *F)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen() {
		return ErrNotOpen
	}
	fn(&c.draft)
	return nil
}

// Apply coerces raw form strings into the draft, keyed by JSON field name.
func (c *Controller[F]) Apply(values map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpen() {
		return ErrNotOpen
	}
	return decodeInto(&c.draft, values)
}

// Validate checks the draft without submitting.
func (c *Controller[F]) Validate() error {
	c.mu.Lock()
	draft := c.draft
	c.mu.Unlock()
	return c.check(draft)
}

// Cancel discards the draft.
func (c *Controller[F]) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return
	}
	c.reset()
}

// Submit validates the draft and hands it to the submitter. Success closes the form;
// failure returns it to its open state with the draft intact.
func (c *Controller[F]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return ErrAlreadySaving
	}
	if !c.isOpen() {
		c.mu.Unlock()
		return ErrNotOpen
	}
	openState := c.state
	id := c.id

	c.state = StateValidating
	if err := c.check(c.draft); err != nil {
		c.state = openState
		c.lastErr = err
		c.mu.Unlock()
		return err
	}

	var payload F
	if err := deepcopy.Copy(&payload, c.draft); err != nil {
		c.state = openState
		c.mu.Unlock()
		return fmt.Errorf("form: copy payload: %w", err)
	}
	c.state = StateSubmitting
	c.saving = true
	c.mu.Unlock()

	var err error
	if openState == StateOpenForCreate {
		err = c.submit.SubmitCreate(ctx, payload)
	} else {
		err = c.submit.SubmitUpdate(ctx, id, payload)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		c.state = openState
		c.lastErr = err
		return err
	}
	c.reset()
	return nil
}

func (c *Controller[F]) check(draft F) error {
	if err := c.validate.Struct(draft); err != nil {
		return firstViolation(err)
	}
	for _, rule := range c.rules {
		if err := rule(draft); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return verr
			}
			return &ValidationError{Message: err.Error()}
		}
	}
	return nil
}

func (c *Controller[F]) isOpen() bool {
	return c.state == StateOpenForCreate || c.state == StateOpenForEdit
}

func (c *Controller[F]) reset() {
	var zero F
	c.state = StateClosed
	c.id = ""
	c.draft = zero
	c.lastErr = nil
}
