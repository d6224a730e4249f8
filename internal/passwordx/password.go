// Package passwordx implements the hashing scheme for stored account
// passwords: PBKDF2 with SHA-512, 100000 iterations and a per-password
// random salt.
//
// The stored form is the 64-character hex salt followed by the 128-character
// hex derived key, 192 characters in total.
package passwordx

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltHexLen = 64
	iterations = 100000
	keyLen     = 64
)

// Hash derives the opaque stored form for password.
func Hash(password string) (string, error) {
	seed := make([]byte, 60)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	digest := sha256.Sum256(seed)
	salt := hex.EncodeToString(digest[:])

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	return salt + hex.EncodeToString(key), nil
}

// Verify reports whether password matches a stored form produced by Hash.
// Malformed stored values never verify.
func Verify(stored, password string) bool {
	if len(stored) != saltHexLen+keyLen*2 {
		return false
	}
	salt := stored[:saltHexLen]
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	candidate := salt + hex.EncodeToString(key)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
