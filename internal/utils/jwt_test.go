package utils

import "testing"

func TestAccessTokenRoundtrip(t *testing.T) {
	ident := TokenIdentity{ID: "64f1b2a3c4d5e6f7a8b9c0d1", Username: "alice"}

	token, err := NewAccessToken("secret", ident)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	got, err := ParseAccessToken("secret", token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if got != ident {
		t.Fatalf("identity mismatch: got %+v want %+v", got, ident)
	}
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", TokenIdentity{ID: "1", Username: "alice"})
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := ParseAccessToken("other-secret", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseAccessTokenGarbage(t *testing.T) {
	if _, err := ParseAccessToken("secret", "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
