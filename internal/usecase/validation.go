package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitsOnly   = regexp.MustCompile(`^\d{10}$`)
)

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a 10-digit number"})
	}

	return errors
}

// Phone is valid when exactly 10 digits remain after stripping hyphens
// and spaces.
func isValidPhoneNumber(phone string) bool {
	cleaned := strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(phone))
	return digitsOnly.MatchString(cleaned)
}

func validationMessage(errors []ValidationError) string {
	msg := "validation failed: "
	for i, e := range errors {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return msg
}
