package xerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func ParsePGErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code // e.g. 23505 for unique_violation
	}
	return "unknown"
}

// Generic
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternalServer = errors.New("internal server error")
)

// Registration / Login
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
)

// Input validation
var (
	ErrFirstNameRequired  = errors.New("first name required")
	ErrLastNameRequired   = errors.New("last name required")
	ErrEmailRequired      = errors.New("email required")
	ErrPhoneRequired      = errors.New("phone required")
	ErrPasswordRequired   = errors.New("password required")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
)

// Session token
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
)

// IsValidation reports whether err is one of the input validation sentinels,
// so handlers can map the whole class to a 400 without listing each one.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidRequest,
		ErrFirstNameRequired,
		ErrLastNameRequired,
		ErrEmailRequired,
		ErrPhoneRequired,
		ErrPasswordRequired,
		ErrInvalidEmailFormat,
		ErrPasswordTooShort,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
