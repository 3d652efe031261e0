// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLen = 8
	maxPasswordLen = 128
	maxNameLen     = 100
	maxSkillLen    = 100
	maxMessageLen  = 1000
)

// ValidateName checks the display name supplied at registration.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxNameLen)
	}
	return nil
}

// ValidateEmail checks basic email shape. Uniqueness is the repository's job.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 120 || !emailRegex.MatchString(email) {
		return fmt.Errorf("email address is not valid")
	}
	return nil
}

// ValidatePassword checks if a password meets minimum requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", maxPasswordLen)
	}
	return nil
}

// ValidateSkillName checks a skill name from the add-skill form.
func ValidateSkillName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("skill name is required")
	}
	if len(name) > maxSkillLen {
		return fmt.Errorf("skill name must not exceed %d characters", maxSkillLen)
	}
	return nil
}

// ValidateMessage checks the optional free-text message on a swap request.
func ValidateMessage(message string) error {
	if len(message) > maxMessageLen {
		return fmt.Errorf("message must not exceed %d characters", maxMessageLen)
	}
	return nil
}
