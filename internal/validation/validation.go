package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a validation error on a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateGuestName checks the guest or party name on a submission
func ValidateGuestName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateGuestCount checks the party size on a submission
func ValidateGuestCount(count int) error {
	if count < 1 {
		return ValidationError{Field: "guest_count", Message: "guest count must be at least 1"}
	}
	return nil
}

// ValidateSeats checks the reserved seat count on a manual invite
func ValidateSeats(seats int) error {
	if seats < 1 {
		return ValidationError{Field: "reserved_seats", Message: "reserved seats must be at least 1"}
	}
	return nil
}

// ValidateChildren checks the bringing-children / children-count pairing:
// a count is only meaningful when children are actually coming
func ValidateChildren(bringingChildren *bool, childrenCount *int) error {
	bringing := bringingChildren != nil && *bringingChildren
	if !bringing && childrenCount != nil && *childrenCount > 0 {
		return ValidationError{Field: "children_count", Message: "children count requires bringing_children"}
	}
	if bringing && childrenCount != nil && *childrenCount < 0 {
		return ValidationError{Field: "children_count", Message: "children count cannot be negative"}
	}
	return nil
}
