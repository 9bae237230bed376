package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	tok, err := GenerateJWT(42)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	userID, err := ParseJWT(tok)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", userID)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	SetJWTSecret("right-secret")
	tok, err := GenerateJWT(1)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	SetJWTSecret("wrong-secret")
	if _, err := ParseJWT(tok); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	SetJWTSecret("test-secret")

	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"user_id": int64(7),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     now - 7200,
		"nbf":     now - 7200,
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := ParseJWT(tok); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	SetJWTSecret("test-secret")
	if _, err := ParseJWT("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
