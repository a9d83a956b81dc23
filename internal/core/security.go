// PrinceMahmood | 2026
// security.go

package core

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const signingKeyLength = 32

// DeriveSigningKey stretches the configured session secret into a uniform
// 32-byte HMAC key. The secret arrives from the environment and may be any
// length; HKDF keeps weak-length secrets from being used raw as signing keys.
func DeriveSigningKey(secret, label string) ([]byte, error) {
	if secret == "" {
		return nil, fmt.Errorf("derive signing key: empty secret")
	}

	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(label))

	key := make([]byte, signingKeyLength)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive signing key: %w", err)
	}

	return key, nil
}
