package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/infrastructure/validator"
)

func isoDate(offsetDays int) string {
	return time.Now().AddDate(0, 0, offsetDays).Format("2006-01-02")
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "Email is required", validator.Email(""))
	assert.Equal(t, "Invalid email format", validator.Email("not-an-email"))
	assert.Equal(t, "Invalid email format", validator.Email("missing@dot"))
	assert.Equal(t, "", validator.Email("guest@example.com"))
}

func TestPassword(t *testing.T) {
	assert.Equal(t, "Password is required", validator.Password(""))
	assert.Equal(t, "Password must be at least 6 characters", validator.Password("12345"))
	assert.Equal(t, "", validator.Password("123456"))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "Phone number must be 10 digits", validator.Phone("12345"))
	assert.Equal(t, "Phone number must be 10 digits", validator.Phone("12345678901"))
	assert.Equal(t, "", validator.Phone("9876543210"))
}

func TestPositiveNumber(t *testing.T) {
	assert.Equal(t, "Price must be a positive number", validator.PositiveNumber("abc", "Price"))
	assert.Equal(t, "Price must be a positive number", validator.PositiveNumber("0", "Price"))
	assert.Equal(t, "Price must be a positive number", validator.PositiveNumber("-10", "Price"))
	assert.Equal(t, "", validator.PositiveNumber("2500", "Price"))
}

func TestDateRange_PastStart(t *testing.T) {
	msg := validator.DateRange("2020-01-01", "2030-01-01")
	assert.Contains(t, msg, "must be today or in the future")
}

func TestDateRange_TodayToTomorrow(t *testing.T) {
	assert.Equal(t, "", validator.DateRange(isoDate(0), isoDate(1)))
}

func TestDateRange_EndNotAfterStart(t *testing.T) {
	assert.Equal(t, "End date must be after start date", validator.DateRange(isoDate(1), isoDate(1)))
	assert.Equal(t, "End date must be after start date", validator.DateRange(isoDate(2), isoDate(1)))
}

func TestDateRange_MissingDates(t *testing.T) {
	assert.Equal(t, "Start date is required", validator.DateRange("", isoDate(1)))
	assert.Equal(t, "End date is required", validator.DateRange(isoDate(0), ""))
}

func TestValidateForm_FirstFailurePerField(t *testing.T) {
	data := map[string]string{
		"email":    "",
		"password": "secret99",
	}
	rules := map[string][]validator.Rule{
		"email":    {validator.Email, func(string) string { return "never reached" }},
		"password": {validator.Password},
	}

	errors := validator.ValidateForm(data, rules)
	assert.True(t, validator.HasErrors(errors))
	assert.Equal(t, "Email is required", errors["email"])
	_, ok := errors["password"]
	assert.False(t, ok)
}

func TestValidateForm_AllValid(t *testing.T) {
	data := map[string]string{"email": "a@b.co"}
	rules := map[string][]validator.Rule{"email": {validator.Email}}
	assert.False(t, validator.HasErrors(validator.ValidateForm(data, rules)))
}
