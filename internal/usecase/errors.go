package usecase

import "errors"

// Sentinel errors services raise so handlers can map them to HTTP statuses
// without string matching. Kept distinct on purpose: a missing resource is
// not the same failure as a caller who owns nothing, and a bad invitation
// key is not a malformed request.
var (
	// ErrNotFound - the resource does not exist or a filtered query
	// matched nothing.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden - the caller is authenticated but is not allowed to act
	// on this resource.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized - a privileged signup presented no invitation key or
	// one that does not verify.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials - unknown email or wrong password on signin.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken - signup with an email that is already registered.
	ErrEmailTaken = errors.New("email already registered")
)
