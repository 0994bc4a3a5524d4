// Package crypto implements server-side key derivation for sealing secrets at rest.
package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the master sealing key from the configured secret.
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1

	// MasterKeyLen is the length of the derived master key.
	MasterKeyLen uint32 = 32

	minSaltLen = 8
)

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// DeriveMasterKey stretches the operator secret into the master sealing key.
// The same (secret, salt) always yields the same key, so both must stay stable
// for already sealed records to remain readable.
func DeriveMasterKey(secret, salt []byte) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty seal secret")
	}
	if len(salt) < minSaltLen {
		return nil, errors.New("seal salt too short")
	}
	return argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, MasterKeyLen), nil
}
