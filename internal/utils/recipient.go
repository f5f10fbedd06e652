package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	e164Regex      = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)
	phoneSeparator = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeMobile strips separators from a phone number and checks that
// the result is in E.164 form, e.g. +6591234567.
func NormalizeMobile(number string) (string, error) {
	stripped := phoneSeparator.Replace(strings.TrimSpace(number))
	if !e164Regex.MatchString(stripped) {
		return "", fmt.Errorf("invalid mobile number format")
	}
	return stripped, nil
}

// MaskEmail masks the local part of an email address for logging
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	if len(localPart) <= 2 {
		return localPart + "@" + parts[1]
	}
	return localPart[:2] + strings.Repeat("*", len(localPart)-2) + "@" + parts[1]
}

// MaskPhoneNumber keeps only the last 4 digits of a phone number visible
func MaskPhoneNumber(phone string) string {
	digits := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
