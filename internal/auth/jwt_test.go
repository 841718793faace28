package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(User{
		ID:          "u1",
		Email:       "manager@venue.example",
		Name:        "Venue Manager",
		Provider:    ProviderGoogle,
		AccessToken: "ya29.provider-token",
	})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Subject != "u1" {
		t.Errorf("subject = %q, want u1", claims.Subject)
	}
	if claims.Email != "manager@venue.example" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Provider != ProviderGoogle {
		t.Errorf("provider = %q, want google", claims.Provider)
	}
	if claims.AccessToken != "ya29.provider-token" {
		t.Errorf("accessToken = %q", claims.AccessToken)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue(User{ID: "u1", Provider: ProviderMicrosoft})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("expected verification to fail with a different secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := NewTokenIssuer("secret", -time.Minute).Issue(User{ID: "u1", Provider: ProviderGoogle})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := NewTokenIssuer("secret", -time.Minute).Verify(token); err == nil {
		t.Fatal("expected verification to fail for an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := NewTokenIssuer("secret", time.Hour).Verify("not.a.token"); err == nil {
		t.Fatal("expected verification to fail for malformed input")
	}
}
