package form

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// DateLayout is the layout accepted for date fields entered as text.
const DateLayout = time.DateOnly

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return v
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func firstViolation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := verrs[0]
	field := fe.Field()
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "gt":
		if fe.Param() == "0" {
			msg = fmt.Sprintf("%s must be positive", field)
		} else {
			msg = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		}
	case "gte", "min":
		msg = fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		msg = fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		msg = fmt.Sprintf("%s must be a valid URL", field)
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}
	return &ValidationError{Field: field, Message: msg}
}

// decodeInto writes string values onto dst one key at a time so a bad value
// can be reported against its own field.
func decodeInto(dst any, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           dst,
			TagName:          "json",
			WeaklyTypedInput: true,
			ErrorUnused:      true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(DateLayout),
				mapstructure.StringToSliceHookFunc(","),
			),
		})
		if err != nil {
			return err
		}
		if err := dec.Decode(map[string]any{k: strings.TrimSpace(values[k])}); err != nil {
			if strings.Contains(err.Error(), "has invalid keys") {
				return Invalid(k, "%s is not a field of this form", k)
			}
			return Invalid(k, "%s has an invalid value %q", k, values[k])
		}
	}
	return nil
}
