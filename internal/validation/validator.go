// Package validation checks request shapes before they reach the ledger.
// Every parse function returns either a usable value or a *Validator
// carrying per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *Validator returned as an error.
var ErrValidation = errors.New("validation failed")

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// Validator collects field errors
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records the first message for a field.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Struct runs the `validate` tags of s and records every failure under the
// field's json name.
func (v *Validator) Struct(s interface{}) {
	err := structValidator.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), describe(fe))
	}
}

// Error implements error so a failed Validator can travel up the stack.
func (v *Validator) Error() string {
	fields := make([]string, 0, len(v.Errors))
	for f := range v.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v.Errors[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match a *Validator.
func (v *Validator) Is(target error) bool {
	return target == ErrValidation
}

// Err returns v as an error, or nil when no field failed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return v
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
