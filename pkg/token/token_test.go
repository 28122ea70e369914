package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	signed, err := maker.Issue(42, "Marko")
	if err != nil {
		t.Fatalf("issue: unexpected error: %v", err)
	}
	if signed == "" {
		t.Fatal("issue: expected non-empty token")
	}

	identity, err := maker.Validate(signed)
	if err != nil {
		t.Fatalf("validate: unexpected error: %v", err)
	}
	if identity.UserID != 42 {
		t.Fatalf("validate: expected user id 42 got %d", identity.UserID)
	}
	if identity.Name != "Marko" {
		t.Fatalf("validate: expected name %q got %q", "Marko", identity.Name)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute)

	signed, err := maker.Issue(42, "Marko")
	if err != nil {
		t.Fatalf("issue: unexpected error: %v", err)
	}

	if _, err := maker.Validate(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)
	other := NewMaker("other-secret", time.Hour)

	signed, err := maker.Issue(42, "Marko")
	if err != nil {
		t.Fatalf("issue: unexpected error: %v", err)
	}

	if _, err := other.Validate(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := maker.Validate(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
