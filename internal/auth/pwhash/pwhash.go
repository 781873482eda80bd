// Package pwhash hashes account passwords with PBKDF2-SHA256.
package pwhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const keyLength = 32

// PasswordHasher derives and validates password hashes. The encoded form is
// "iterations$salt$key" with base64 raw url encoding.
type PasswordHasher struct {
	saltSize   int
	iterations int
}

// New creates a hasher with the given salt size in bytes and PBKDF2
// iteration count.
func New(saltSize, iterations int) (*PasswordHasher, error) {
	if saltSize <= 0 {
		return nil, errors.New("salt size must be positive")
	}
	if iterations <= 0 {
		return nil, errors.New("iterations must be positive")
	}
	return &PasswordHasher{
		saltSize:   saltSize,
		iterations: iterations,
	}, nil
}

// HashPassword derives a new salted hash for the password.
func (ph *PasswordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, ph.saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("can't generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, ph.iterations, keyLength, sha256.New)

	enc := base64.RawURLEncoding
	return fmt.Sprintf("%d$%s$%s", ph.iterations, enc.EncodeToString(salt), enc.EncodeToString(key)), nil
}

// Validate checks the password against an encoded hash.
func (ph *PasswordHasher) Validate(password, hash string) error {
	parts := strings.Split(hash, "$")
	if len(parts) != 3 {
		return errors.New("malformed password hash")
	}
	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return errors.New("malformed password hash")
	}
	enc := base64.RawURLEncoding
	salt, err := enc.DecodeString(parts[1])
	if err != nil {
		return errors.New("malformed password hash")
	}
	want, err := enc.DecodeString(parts[2])
	if err != nil {
		return errors.New("malformed password hash")
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return errors.New("password mismatch")
	}
	return nil
}
