package auth

import (
	"testing"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "wowcampus", time.Hour)

	token, err := svc.GenerateAccessToken(kernel.UserID("u-1"), RoleCompany)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "u-1" || claims.Role != RoleCompany {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.ExpiresAt.IsZero() {
		t.Fatalf("expected expiry to be set")
	}
}

func TestJWTServiceRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "wowcampus", time.Minute)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(kernel.UserID("u-1"), RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateAccessToken(token)
	if !errx.IsCode(err, CodeInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if e, _ := errx.As(err); e.Details["reason"] != "expired" {
		t.Fatalf("expected expired reason, got %v", e.Details)
	}
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	other := NewJWTService("other-secret", "wowcampus", time.Hour)
	token, err := other.GenerateAccessToken(kernel.UserID("u-1"), RoleAdmin)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc := NewJWTService("test-secret", "wowcampus", time.Hour)
	if _, err := svc.ValidateAccessToken(token); !errx.IsCode(err, CodeInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTServiceRejectsOtherIssuer(t *testing.T) {
	other := NewJWTService("test-secret", "someone-else", time.Hour)
	token, _ := other.GenerateAccessToken(kernel.UserID("u-1"), RoleAdmin)

	svc := NewJWTService("test-secret", "wowcampus", time.Hour)
	if _, err := svc.ValidateAccessToken(token); !errx.IsCode(err, CodeInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTServiceRequiresSecret(t *testing.T) {
	svc := NewJWTService("", "wowcampus", time.Hour)
	if _, err := svc.GenerateAccessToken(kernel.UserID("u-1"), RoleAdmin); !errx.IsCode(err, CodeMissingSecret) {
		t.Fatalf("expected missing secret, got %v", err)
	}
}

func TestHashPassword(t *testing.T) {
	if _, err := HashPassword("short"); !errx.IsCode(err, CodeInvalidUser) {
		t.Fatalf("expected short password to be rejected, got %v", err)
	}

	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !ComparePassword(hash, "correct horse") {
		t.Fatalf("expected password to match its hash")
	}
	if ComparePassword(hash, "wrong horse") {
		t.Fatalf("expected a different password not to match")
	}
}
