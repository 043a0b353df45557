package utils

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// nopastdate rejects YYYY-MM-DD values strictly before today. Format
	// errors are left to the datetime tag.
	v.RegisterValidation("nopastdate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		d, err := time.Parse("2006-01-02", value)
		if err != nil {
			return true
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return !d.Before(today)
	})

	return v
}

// ValidateStruct runs tag validation; the returned error is a
// validator.ValidationErrors when validation failed.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

var validationMessages = map[string]string{
	"required":   "This field is required.",
	"email":      "Enter a valid email address.",
	"datetime":   "Enter a valid date.",
	"nopastdate": "Due date cannot be in the past.",
	"eqfield":    "Passwords do not match.",
}

// GetValidationErrors flattens a validation error into a field → message
// map, keeping only the first violated rule per field. Fields are visited
// in declaration order, so required beats format beats cross-field rules.
func GetValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}

	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		if msg, ok := validationMessages[fe.Tag()]; ok {
			errs[fe.Field()] = msg
			continue
		}
		switch fe.Tag() {
		case "max":
			errs[fe.Field()] = fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		default:
			errs[fe.Field()] = "Enter a valid value."
		}
	}

	return errs
}
