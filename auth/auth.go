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

	"github.com/google/uuid"
)

var (
	ErrInvalidCallerToken = errors.New("invalid caller token")
	ErrEmptyCallerID      = errors.New("caller id must not be empty")
)

// GenerateBallotID creates a unique identifier for a new ballot.
func GenerateBallotID() string {
	return uuid.NewString()
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateCallerToken creates an HMAC-based token binding a caller identity
// to this service instance. Deterministic and verifiable; this is a service
// credential, not a cryptographic signature of the caller.
func GenerateCallerToken(callerID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(callerID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateCallerToken checks that token was issued for callerID.
func ValidateCallerToken(callerID, token, salt string) error {
	if callerID == "" {
		return ErrEmptyCallerID
	}
	expected := GenerateCallerToken(callerID, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidCallerToken
	}
	return nil
}
