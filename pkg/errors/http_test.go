package errors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "business-admin/pkg/errors"
)

func TestHTTPErrorMessage(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "code exists", "code SAVE10 is taken")
	assert.Equal(t, "code exists: code SAVE10 is taken", err.Error())
	assert.Equal(t, "forbidden", pkgErrors.ErrForbidden.Error())
}

func TestNewBindingError(t *testing.T) {
	type payload struct {
		Name  string  `validate:"required"`
		Price float64 `validate:"gt=0"`
	}

	verr := validator.New().Struct(payload{})
	require.Error(t, verr)

	httpErr := pkgErrors.NewBindingError(verr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, []string{"Name is required", "Price must be greater than 0"}, httpErr.Details)

	plain := pkgErrors.NewBindingError(errors.New("unexpected EOF"))
	assert.Equal(t, []string{"unexpected EOF"}, plain.Details)
}
