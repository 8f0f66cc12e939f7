package helpers

import "testing"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := SignSessionToken("secret", "user-123", "user@example.com")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	claims, err := ValidateSessionToken("secret", token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("expected subject user-123, got %q", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %q", claims.Email)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := SignSessionToken("secret", "user-123", "user@example.com")
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := ValidateSessionToken("other-secret", token); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	if _, err := ValidateSessionToken("secret", "not.a.token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}
