package applications

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

var phoneCharsRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

// newValidator builds the validator with the intake-specific rules registered.
func newValidator() *validator.Validate {
	v := validator.New()

	// report the json tag name instead of the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// education_level: value must be in the closed set
	_ = v.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
		return domain.ValidEducationLevel(fl.Field().String())
	})

	// phone_chars: digits, spaces, dashes, plus, parentheses only
	_ = v.RegisterValidation("phone_chars", func(fl validator.FieldLevel) bool {
		return phoneCharsRe.MatchString(fl.Field().String())
	})

	return v
}

func jsonFieldName(fe validator.FieldError) string {
	if fe.Field() != "" {
		return fe.Field()
	}
	return strings.ToLower(fe.StructField())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "education_level":
		return "must be one of: High School, Associate's, Bachelor's, Master's, Doctorate"
	case "phone_chars":
		return "must be a valid phone number"
	}
	return "is invalid"
}
