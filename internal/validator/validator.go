package validator

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Error message formats referenced by handler tests.
const (
	ErrRequired  = "is required"
	ErrEmail     = "must be a valid email address"
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrPassword  = "must be 8-25 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)"
	ErrYear = "must be a valid publishing year"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

// The earliest year accepted for publishing_year. 1888 is the year of the
// oldest surviving film.
const minPublishingYear = 1888

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("publishing_year", validatePublishingYear)

	return validator
}

func validatePublishingYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())

	return year >= minPublishingYear && year <= time.Now().Year()+5
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "password":
		return ErrPassword
	case "publishing_year":
		return ErrYear
	default:
		return "is invalid"
	}
}
