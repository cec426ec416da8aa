package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HamsterHaven_Go/internal/habitat"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("hamster_action", validateAction)
		_ = v.RegisterValidation("hamster_name", validateName)
		validate = &Validator{validate: v}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "uuid", "uuid4":
			errs[field] = "Must be a hamster ID"
		case "hamster_action":
			errs[field] = fmt.Sprintf("Must be one of %v", habitat.Actions())
		case "hamster_name":
			errs[field] = "Name cannot be blank"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateAction(fl validator.FieldLevel) bool {
	action := habitat.Action(strings.ToLower(fl.Field().String()))
	for _, a := range habitat.Actions() {
		if a == action {
			return true
		}
	}
	return false
}

func validateName(fl validator.FieldLevel) bool {
	return hamster.NormalizeName(fl.Field().String()) != ""
}
