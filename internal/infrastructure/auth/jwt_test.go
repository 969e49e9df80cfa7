package authinfra

import (
	"testing"
	"time"
)

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)

	token, exp, err := issuer.Issue("u-1")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("expected future expiry, got %v", exp)
	}

	claims, err := issuer.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken failed: %v", err)
	}
	if claims.UserID != "u-1" {
		t.Errorf("expected u-1, got %s", claims.UserID)
	}
}

func TestJWTIssuer_RejectsOtherSecret(t *testing.T) {
	token, _, err := NewJWTIssuer("secret-a", time.Hour).Issue("u-1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewJWTIssuer("secret-b", time.Hour).ParseAccessToken(token); err == nil {
		t.Error("expected signature error")
	}
}

func TestJWTIssuer_Expired(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := issuer.Issue("u-1")
	if err != nil {
		t.Fatal(err)
	}

	issuer.now = time.Now
	if _, err := issuer.ParseAccessToken(token); err == nil {
		t.Error("expected expired token error")
	}
}

func TestJWTIssuer_EmptyUser(t *testing.T) {
	if _, _, err := NewJWTIssuer("secret", time.Hour).Issue(" "); err == nil {
		t.Error("expected error for empty user id")
	}
}

func TestJWTIssuer_Garbage(t *testing.T) {
	if _, err := NewJWTIssuer("secret", time.Hour).ParseAccessToken("not-a-jwt"); err == nil {
		t.Error("expected parse error")
	}
}
