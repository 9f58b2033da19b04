// Package validation wraps go-playground/validator with the rules request
// bodies of this service need.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/YusovID/pangea-backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()

	idPattern     = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	statusPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func init() {
	// Messages name fields the way clients send them.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	rules := map[string]*regexp.Regexp{
		"custom_id": idPattern,
		"status":    statusPattern,
	}

	for tag, re := range rules {
		err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			// Empty values are left to 'required'.
			if fl.Field().String() == "" {
				return true
			}

			return re.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("failed to register custom validation: %v", err))
		}
	}
}

// ValidationError holds one message per failed field.
type ValidationError struct {
	Errors []string
}

func (v *ValidationError) Error() string {
	return strings.Join(v.Errors, ", ")
}

func (v *ValidationError) Is(target error) bool { return target == apperrors.ErrValidation }

// ValidateStruct validates s by its struct tags. Failures come back as
// *ValidationError.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validation: %w", err)
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, message(fe))
	}

	return &ValidationError{Errors: messages}
}

// Invalid builds a ValidationError for checks that struct tags cannot express.
func Invalid(format string, args ...any) error {
	return &ValidationError{Errors: []string{fmt.Sprintf(format, args...)}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "custom_id":
		return fmt.Sprintf("field '%s' must contain only letters, numbers, hyphens, and underscores", fe.Field())
	case "status":
		return fmt.Sprintf("field '%s' must be a lowercase status such as 'in-progress'", fe.Field())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of [%s]", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}
