package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HTTPError is an error that carries the HTTP status and the message shown to the caller.
type HTTPError struct {
	Code    int
	Message string
	Details []string
}

func (e *HTTPError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
}

// NewHTTPError creates an HTTPError with optional detail strings.
func NewHTTPError(code int, message string, details ...string) *HTTPError {
	return &HTTPError{Code: code, Message: message, Details: details}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrMissingTenant       = NewHTTPError(http.StatusBadRequest, "business id is required")
)

// NewBindingError converts a gin binding error into a 400 HTTPError.
// Validator failures become one detail string per field.
func NewBindingError(err error) *HTTPError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, describeField(fe))
		}
		return NewHTTPError(http.StatusBadRequest, "invalid request", details...)
	}
	return NewHTTPError(http.StatusBadRequest, "invalid request", err.Error())
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
