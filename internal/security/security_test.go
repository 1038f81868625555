package security

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword("correct horse battery", hash) {
		t.Error("CheckPassword() = false for matching password")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestTokenIssuerRoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() error = %v", err)
	}

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != "user-1" {
		t.Errorf("Verify() userID = %q, want user-1", userID)
	}
}

func TestTokenIssuerRejectsBadInput(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret", time.Hour)

	if _, err := issuer.Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Verify(garbage) error = %v, want ErrInvalidToken", err)
	}

	other, _ := NewTokenIssuer("other-secret", time.Hour)
	token, _ := other.Issue("user-1")
	if _, err := issuer.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify(foreign token) error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenIssuerRejectsExpiredToken(t *testing.T) {
	issuer, _ := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := issuer.Verify(token); err != ErrInvalidToken {
		t.Errorf("Verify(expired) error = %v, want ErrInvalidToken", err)
	}
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	if _, err := NewTokenIssuer("", time.Hour); err == nil {
		t.Error("NewTokenIssuer(\"\") expected error")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)

	if !rl.Allow("1.2.3.4") {
		t.Error("first request should be allowed")
	}
	if !rl.Allow("1.2.3.4") {
		t.Error("second request should be allowed")
	}
	if rl.Allow("1.2.3.4") {
		t.Error("third request should be rejected")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("different IP should be allowed")
	}
}
