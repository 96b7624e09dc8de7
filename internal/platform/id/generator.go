// Package id issues opaque identifiers handed to API clients.
package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers such as session tokens.
type Generator interface {
	NewID() (string, error)
}

// TokenGenerator issues random UUIDv4 strings, optionally behind a fixed prefix.
type TokenGenerator struct {
	prefix string
}

// NewTokenGenerator returns a generator whose tokens start with prefix, e.g. "ses_".
func NewTokenGenerator(prefix string) *TokenGenerator {
	return &TokenGenerator{prefix: prefix}
}

func (g *TokenGenerator) NewID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("new random token: %w", err)
	}
	return g.prefix + u.String(), nil
}
