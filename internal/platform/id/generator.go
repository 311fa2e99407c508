// Package id issues the opaque identifiers stored on every persisted
// entity. Identifiers carry no ordering or timestamp information.
package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// Generator produces a new unique identifier per call.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator emits 32-character hex strings backed by crypto/rand.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(raw), nil
}
