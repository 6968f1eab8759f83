// Package cryptox derives password verifiers with Argon2id.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/cryptotracker/internal/shared"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of salts made by NewSalt.
const SaltSize = 32

// NewSalt returns a random salt for DeriveKey.
func NewSalt() []byte {
	return shared.GenerateRandByteArray(SaltSize)
}

// DeriveKey stretches password with salt using Argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value stored for a user.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifyPassword reports whether password with salt reproduces verifier.
// The comparison runs in constant time.
func VerifyPassword(password, salt, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
