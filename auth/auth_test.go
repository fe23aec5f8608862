// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id1, err := GenerateID(16)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}
	if len(id1) != 32 {
		t.Errorf("Expected 32 hex chars, got %d", len(id1))
	}

	id2, err := GenerateID(16)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}
	if id1 == id2 {
		t.Error("Expected two generated IDs to differ")
	}
}

func TestSignAndVerifyUserToken(t *testing.T) {
	secret := "test-token-secret"
	token := SignUserToken("user-123", secret)

	userID, err := VerifyUserToken(token, secret)
	if err != nil {
		t.Fatalf("VerifyUserToken failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Expected user-123, got %s", userID)
	}
}

func TestVerifyUserTokenRejections(t *testing.T) {
	secret := "test-token-secret"
	valid := SignUserToken("user-123", secret)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"no separator", "user-123"},
		{"empty user id", "." + strings.SplitN(valid, ".", 2)[1]},
		{"tampered user id", "user-456." + strings.SplitN(valid, ".", 2)[1]},
		{"tampered signature", "user-123.bogus-signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyUserToken(tt.token, secret); err == nil {
				t.Errorf("Expected error for %q, got none", tt.token)
			}
		})
	}
}

func TestVerifyUserTokenWrongSecret(t *testing.T) {
	token := SignUserToken("user-123", "secret-a")
	if _, err := VerifyUserToken(token, "secret-b"); err == nil {
		t.Error("Expected token signed with a different secret to be rejected")
	}
}
