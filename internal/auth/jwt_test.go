package auth

import (
	"testing"
	"time"

	"gatherly/config"
)

func testJWTConfig(expiry time.Duration) *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", Expiry: expiry, Issuer: "test"}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testJWTConfig(time.Hour)
	token, err := GenerateToken(cfg, 42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testJWTConfig(-time.Minute)
	token, err := GenerateToken(cfg, 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(cfg, token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testJWTConfig(time.Hour), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	other := &config.JWTConfig{Secret: "other-secret", Expiry: time.Hour, Issuer: "test"}
	if _, err := ParseToken(other, token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken(testJWTConfig(time.Hour), "not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for garbage input, got %v", err)
	}
}
