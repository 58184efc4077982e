package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rochers/feoblog/util"
)

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error holds all field errors from one validation pass.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	messages := util.Map(e.Fields, func(f FieldError) string {
		return fmt.Sprintf("%s: %s", f.Field, f.Message)
	})
	return strings.Join(messages, "; ")
}

// FieldsOf returns the field errors carried by err, or nil if err is not a
// validation Error.
func FieldsOf(err error) []FieldError {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

// Validator collects validation errors for manual checks that struct tags
// cannot express.
type Validator struct {
	errors []FieldError
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{errors: make([]FieldError, 0)}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Check adds err.Error() as a field error if err is non-nil.
func (v *Validator) Check(field string, err error) {
	if err != nil {
		v.AddError(field, err.Error())
	}
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Validate returns an Error if any field errors were collected, nil otherwise.
func (v *Validator) Validate() error {
	if !v.HasErrors() {
		return nil
	}
	return &Error{Fields: v.errors}
}
