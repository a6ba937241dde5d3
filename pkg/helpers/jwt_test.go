package helpers

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if time.Until(exp) < 55*time.Minute {
		t.Errorf("expiry too soon: %v", exp)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("user id %q, want user-42", claims.UserID)
	}
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	token, _, err := m.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.ParseToken(token); err == nil {
		t.Error("expired token should not parse")
	}
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour)
	token, _, err := issuer.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	verifier := NewJWTManager("secret-b", time.Hour)
	if _, err := verifier.ParseToken(token); err == nil {
		t.Error("token signed with another secret should not parse")
	}
}

func TestJWTGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.ParseToken(tok); err == nil {
			t.Errorf("ParseToken(%q) should fail", tok)
		}
	}
}
