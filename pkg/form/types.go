package form

import (
	"context"
	"errors"
	"fmt"
)

// State is the controller's position in its lifecycle.
type State int

const (
	StateClosed State = iota
	StateOpenForCreate
	StateOpenForEdit
	StateValidating
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpenForCreate:
		return "open-for-create"
	case StateOpenForEdit:
		return "open-for-edit"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Rule is a custom check run after the struct tag rules. Return a *ValidationError
// to point at a field, any other error is reported as a form-level message.
type Rule[F any] func(draft F) error

// Submitter receives validated payloads.
type Submitter[F any] interface {
	SubmitCreate(ctx context.Context, draft F) error
	SubmitUpdate(ctx context.Context, id string, draft F) error
}

// ValidationError is the first violated rule, phrased for the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Invalid builds a field-level ValidationError for custom rules.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrNotOpen       = errors.New("form is not open")
	ErrAlreadySaving = errors.New("form is already being submitted")
)
