package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators on the validator instance
// and makes errors report JSON field names.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("nonempty", NonEmpty)
}

// NonEmpty rejects a present but empty string. Pair it with omitnil on
// nullable fields so null stays allowed.
func NonEmpty(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
