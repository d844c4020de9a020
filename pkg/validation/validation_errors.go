package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"interview-tracker/pkg/datetime"

	"github.com/go-playground/validator/v10"
)

// FirstError renders the first problem found in a rejected request body as a
// single message naming the offending JSON field, e.g.
// `"name" length must be at least 3 characters long`.
func FirstError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return formatFieldError(validationErrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "value"
		}
		return fmt.Sprintf("%q must be %s", field, kindNoun(typeErr.Type))
	}

	// date_time is the only date-typed field in request bodies
	var dateErr *datetime.ParseError
	if errors.As(err, &dateErr) {
		return `"date_time" must be a valid date`
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "request body is not valid JSON"
	}

	if errors.Is(err, io.EOF) {
		return `"value" is required`
	}

	if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return field + " is not allowed"
	}

	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	field := fmt.Sprintf("%q", e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "nonempty":
		return field + " is not allowed to be empty"
	case "min":
		if isCollection(e.Kind()) {
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		}
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "max":
		if isCollection(e.Kind()) {
			return fmt.Sprintf("%s must contain less than or equal to %s items", field, param)
		}
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "email":
		return field + " must be a valid email"
	case "uuid", "uuid4":
		return field + " must be a valid GUID"
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, e.Tag())
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}

func kindNoun(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Ptr:
		return kindNoun(t.Elem())
	default:
		return "an object"
	}
}
