package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// hashPassword derives a scrypt key from the plaintext under a fresh
// random salt and encodes it as "hex(key).hex(salt)".
func hashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// comparePasswords re-derives the key with the stored salt and compares
// in constant time. Malformed digests report false, never an error.
func comparePasswords(password, stored string) bool {
	hashed, salt, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}
	storedKey, err := hex.DecodeString(hashed)
	if err != nil {
		return false
	}
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	key, err := scrypt.Key([]byte(password), saltBytes, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	// ConstantTimeCompare is only defined for equal-length inputs.
	if len(storedKey) != len(key) {
		return false
	}
	return subtle.ConstantTimeCompare(storedKey, key) == 1
}
