// Package validation holds the field-level validators the CLI runs before
// invoking session store operations. All functions are pure; the session
// store itself does not re-validate.
package validation

import (
	"errors"
	"regexp"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// ValidateEmail reports whether email looks like local@domain.tld.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword requires at least 6 characters.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// ValidateUsername requires at least 3 characters, limited to letters,
// digits and underscores.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if !usernamePattern.MatchString(username) {
		return errors.New("username can only contain letters, numbers, and underscores")
	}
	return nil
}

// ValidateConfirmPassword requires the confirmation to match the password.
func ValidateConfirmPassword(password, confirm string) error {
	if password != confirm {
		return errors.New("passwords do not match")
	}
	return nil
}
