package identity

import "errors"

// Service-level error kinds. Callers discriminate with errors.Is; the
// boundary layer owns translation to user-facing responses.
//
// ErrInvalidCredentials deliberately covers unknown email, missing
// credential, and wrong secret so error kind alone cannot confirm whether
// an account exists. ErrInvalidOrExpiredToken merges unknown and expired
// for the same reason.
var (
	ErrAccountConflict       = errors.New("email is already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmailNotVerified      = errors.New("email address is not verified")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired verification token")
	ErrAccountNotFound       = errors.New("account not found")
	ErrAlreadyVerified       = errors.New("email is already verified")
	ErrHashingFailed         = errors.New("failed to hash password")
)

// Store-level sentinels. Store implementations return these; the service
// maps them onto the kinds above.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)
