// Package validation checks job payloads against the declared field rules
// and produces field-level errors a client can render next to its form.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobtrackr/internal/dtos"
)

// FieldError names the offending field (by its JSON name) and carries a
// human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateJobRequest trims the payload, validates it, and on success runs the
// empty-to-absent sanitization pass. The returned slice is nil when the
// payload is valid; otherwise it holds one entry per failed field.
func ValidateJobRequest(req *dtos.JobRequest) []FieldError {
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return []FieldError{{Field: "", Message: "invalid payload"}}
		}
		fieldErrs := make([]FieldError, 0, len(errs))
		for _, fe := range errs {
			fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: message(fe)})
		}
		return fieldErrs
	}
	// sanitization always follows validation, for create and update alike
	req.Sanitize()
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
