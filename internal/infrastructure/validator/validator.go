// Package validator holds the form-field validators. Each validator
// returns a human-readable message, or the empty string when the value
// is valid; nothing here panics or returns an error value.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Rule is one field-level validation step.
type Rule func(value string) string

// Email requires a two-part address with an @ and a dot segment.
func Email(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return "Invalid email format"
	}
	return ""
}

// Password requires at least 6 characters.
func Password(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters"
	}
	return ""
}

// Name requires at least 2 characters.
func Name(name string) string {
	if name == "" {
		return "Name is required"
	}
	if len(name) < 2 {
		return "Name must be at least 2 characters"
	}
	return ""
}

// Phone requires exactly 10 digits.
func Phone(phone string) string {
	if phone == "" {
		return "Phone number is required"
	}
	if !phoneRegex.MatchString(phone) {
		return "Phone number must be 10 digits"
	}
	return ""
}

// Required rejects empty and whitespace-only values.
func Required(value, fieldName string) string {
	if fieldName == "" {
		fieldName = "This field"
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", fieldName)
	}
	return ""
}

// MinLength requires at least min characters.
func MinLength(value string, min int, fieldName string) string {
	if fieldName == "" {
		fieldName = "This field"
	}
	if len(value) < min {
		return fmt.Sprintf("%s must be at least %d characters", fieldName, min)
	}
	return ""
}

// MaxLength requires at most max characters.
func MaxLength(value string, max int, fieldName string) string {
	if fieldName == "" {
		fieldName = "This field"
	}
	if len(value) > max {
		return fmt.Sprintf("%s must not exceed %d characters", fieldName, max)
	}
	return ""
}

// Number requires a parseable number.
func Number(value, fieldName string) string {
	if fieldName == "" {
		fieldName = "This field"
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return fmt.Sprintf("%s must be a number", fieldName)
	}
	return ""
}

// PositiveNumber requires a parseable, strictly positive number.
func PositiveNumber(value, fieldName string) string {
	if fieldName == "" {
		fieldName = "This field"
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n <= 0 {
		return fmt.Sprintf("%s must be a positive number", fieldName)
	}
	return ""
}

// Date requires a calendar date that is today or later. Dates compare
// as ISO strings, which matches the local-day semantics of the forms.
func Date(date, fieldName string) string {
	if fieldName == "" {
		fieldName = "Date"
	}
	if date == "" {
		return fmt.Sprintf("%s is required", fieldName)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Sprintf("%s is not a valid date", fieldName)
	}
	if date < today() {
		return fmt.Sprintf("%s must be today or in the future", fieldName)
	}
	return ""
}

// DateRange requires start to be today or later and end to be strictly
// after start.
func DateRange(startDate, endDate string) string {
	if startDate == "" {
		return "Start date is required"
	}
	if endDate == "" {
		return "End date is required"
	}
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		return "Start date is not a valid date"
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return "End date is not a valid date"
	}
	if startDate < today() {
		return "Start date must be today or in the future"
	}
	if endDate <= startDate {
		return "End date must be after start date"
	}
	return ""
}

// ValidateForm runs each field's rules in order, recording the first
// failure per field. The returned map is empty when everything passed.
func ValidateForm(data map[string]string, rules map[string][]Rule) map[string]string {
	errors := map[string]string{}
	for field, fieldRules := range rules {
		value := data[field]
		for _, rule := range fieldRules {
			if msg := rule(value); msg != "" {
				errors[field] = msg
				break
			}
		}
	}
	return errors
}

// HasErrors reports whether any field failed validation.
func HasErrors(errors map[string]string) bool {
	return len(errors) > 0
}

// today returns the current local calendar date in ISO form.
func today() string {
	return time.Now().Format("2006-01-02")
}
