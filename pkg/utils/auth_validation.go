package utils

import (
	"regexp"
	"strings"

	xerrors "portal-auth-service/pkg/utils/errors"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// ValidatePassword enforces the portal's password policy: a minimum length
// only, matching the signup form.
func ValidatePassword(password string) (bool, error) {
	if len(password) < minPasswordLength {
		return false, xerrors.ErrPasswordTooShort
	}
	return true, nil
}
