// Package validation checks struct tags and turns validator failures into
// readable field errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/senior-care-guide/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// jsonFieldName reports fields by their JSON name so messages match the payload.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Errors is a list of field failures.
type Errors []*domain.ValidationError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// ValidateStruct validates a struct based on its validation tags
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return FormatError(err)
	}
	return nil
}

// Assessment reports whether every answer is a known option.
func Assessment(a domain.Assessment) error {
	if err := ValidateStruct(a); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAssessment, err)
	}
	return nil
}

// FormatError converts validator failures (including those returned by gin's
// binding) into Errors. Other errors are returned unchanged.
func FormatError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.NewValidationError(fieldName(fe), formatFieldError(fe), fe.Value()))
	}
	return out
}

func fieldName(e validator.FieldError) string {
	if name := e.Field(); name != "" {
		return lowerFirst(name)
	}
	return e.StructField()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := fieldName(e)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in yyyy-mm-dd form", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
