package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/adiprasetyo/task-tracker-api/internal/constants"
)

// GenerateToken produces a random opaque access token as a hex string.
func GenerateToken() (string, error) {
	bytes := make([]byte, constants.TokenByteLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// HashToken returns the hex SHA-256 digest stored in place of the plaintext.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
