// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SignUserToken creates a verifiable session token for a user.
// Format: <userID>.<base64(HMAC-SHA256(userID, secret))>
// This is deterministic and verifiable without any server-side state.
func SignUserToken(userID, secret string) string {
	return userID + "." + signature(userID, secret)
}

// VerifyUserToken checks a session token and returns the user ID it was
// issued for. Comparison is constant-time.
func VerifyUserToken(token, secret string) (string, error) {
	userID, sig, ok := strings.Cut(token, ".")
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	expected := signature(userID, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func signature(userID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(userID))
	sum := h.Sum(nil)
	// URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
