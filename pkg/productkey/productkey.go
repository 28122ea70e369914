// Package productkey derives and verifies invitation keys for privileged
// signups. A key is never stored: both the issuer and the signup handler
// recompute the same canonical string from (email, role, secret) and the
// distributed key is a bcrypt hash of it.
package productkey

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Derive builds the canonical string shared by issuer and verifier. The
// field order and separator are a wire contract; changing either breaks
// every key already distributed.
func Derive(email, role, secret string) string {
	return fmt.Sprintf("%s-%s-%s", email, role, secret)
}

// Issue hashes a derived string into a distributable product key.
func Issue(derived string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(derived), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash product key: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the presented key matches the derived string.
// bcrypt's comparison is constant-time with respect to the input.
func Verify(candidate, derived string) bool {
	return bcrypt.CompareHashAndPassword([]byte(candidate), []byte(derived)) == nil
}
