// Package secrets reversibly obscures admin credentials at rest. A single
// static key and no key derivation make this deliberately weak; it only keeps
// plain text out of the store, it is not a security boundary.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrInvalidKey = errors.New("obscuring key must be 32 bytes")

type Box struct {
	key [32]byte
}

func NewBox(key string) (*Box, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}

	b := &Box{}
	copy(b.key[:], key)

	return b, nil
}

// Obscure seals the plaintext and returns a base64 token. The nonce is
// random, so obscuring the same value twice yields different tokens; lookups
// must reveal and compare, never compare tokens.
func (b *Box) Obscure(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("rand.Reader -> %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Reveal returns the plaintext for a token, or "" when the token is invalid
// or was sealed under a different key.
func (b *Box) Reveal(token string) string {
	sealed, err := base64.StdEncoding.DecodeString(token)
	if err != nil || len(sealed) < nonceSize {
		return ""
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &b.key)
	if !ok {
		return ""
	}

	return string(plaintext)
}
