package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"myflix/internal/domain"
)

func TestJWTService_IssueAndParse(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	user := domain.User{ID: "u1", Username: "alice"}

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	principal, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if principal.Username != "alice" || principal.UserID != "u1" {
		t.Fatalf("unexpected principal %+v", principal)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "myflix",
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewJWTService("secret", time.Hour)
	if _, err := svc.ParseToken(signed); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTService_RejectsWrongKey(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.IssueToken(domain.User{ID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	for _, token := range []string{"", "   ", "not.a.jwt"} {
		if _, err := svc.ParseToken(token); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("expected ErrJWTInvalid for %q, got %v", token, err)
		}
	}
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	svc := NewJWTService("secret", time.Hour)
	if _, err := svc.ParseToken(signed); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}
