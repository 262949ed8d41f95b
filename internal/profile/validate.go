package profile

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks profiles and other request structs that use the
// profile enum tags (job_type, usage, goal, current_level).
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a validator with the profile tags registered.
func NewValidator() *Validator {
	v := validator.New()
	RegisterValidations(v)
	return &Validator{v: v}
}

// Struct validates s against its struct tags.
func (v *Validator) Struct(s any) error {
	return v.v.Struct(s)
}

// RegisterValidations adds the profile enum tags to v and makes error
// field names follow json tags.
func RegisterValidations(v *validator.Validate) {
	_ = v.RegisterValidation("job_type", oneOf(values(JobTypeOptions)))
	_ = v.RegisterValidation("usage", oneOf(values(UsageOptions)))
	_ = v.RegisterValidation("goal", oneOf(values(GoalOptions)))
	_ = v.RegisterValidation("current_level", oneOf(values(CurrentLevelOptions)))

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func oneOf[T ~string](allowed []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, T(fl.Field().String()))
	}
}

var defaultValidator = NewValidator()

// Validate checks that every field is set to a known value and that at
// least one distinct usage is selected.
func (p Profile) Validate() error {
	return FormatError(defaultValidator.Struct(p))
}

// FormatError flattens validator errors into a single readable error.
// Other errors are returned unchanged.
func FormatError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s entry", fe.Field(), fe.Param()))
		case "unique":
			msgs = append(msgs, fmt.Sprintf("%s has duplicate values", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s has invalid value %q", fe.Field(), fe.Value()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
