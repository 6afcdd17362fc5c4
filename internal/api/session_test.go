package api

import (
	"testing"
	"time"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	tok, err := IssueSessionToken("app-1", secret, 10*time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := VerifySessionToken(tok, secret, now)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got != "app-1" {
		t.Fatalf("applicant mismatch: %q", got)
	}
}

func TestVerifySessionToken_Expired(t *testing.T) {
	secret := "test_secret"
	now := time.Unix(1700000000, 0)

	tok, err := IssueSessionToken("app-1", secret, time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := VerifySessionToken(tok, secret, now.Add(2*time.Minute)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerifySessionToken_WrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tok, err := IssueSessionToken("app-1", "secret-a", time.Minute, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := VerifySessionToken(tok, "secret-b", now); err == nil {
		t.Fatalf("expected signature error")
	}
}
