package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
)

func testIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return NewTokenIssuer(key, "taskboard", "taskboard")
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	issuer := testIssuer(t)
	token, err := issuer.IssueAccessToken("user-123", "a@example.com", 60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	userID, email, err := issuer.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("subject = %q, want user-123", userID)
	}
	if email != "a@example.com" {
		t.Errorf("email = %q, want a@example.com", email)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issuer := testIssuer(t)
	token, err := issuer.IssueAccessToken("user-123", "a@example.com", -60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, _, err := issuer.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestValidateRejectsForeignKey(t *testing.T) {
	token, err := testIssuer(t).IssueAccessToken("user-123", "a@example.com", 60)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other := testIssuer(t)
	if _, _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with a different key validated")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, _, err := testIssuer(t).ValidateAccessToken("not.a.jwt"); err == nil {
		t.Fatal("garbage token validated")
	}
}
