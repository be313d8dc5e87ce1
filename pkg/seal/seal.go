// Package seal encrypts the persisted session token at rest.
package seal

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const prefix = "sealed:v1:"

var ErrMalformed = errors.New("sealed token is malformed")

type Box struct {
	aead cipher.AEAD
}

// New derives an XChaCha20-Poly1305 key from secret with HKDF-SHA256.
func New(secret string) (*Box, error) {
	if secret == "" {
		return nil, errors.New("seal secret is empty")
	}
	h := hkdf.New(sha256.New, []byte(secret), nil, []byte("foodadmin token seal"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	return &Box{aead: aead}, nil
}

func (b *Box) Seal(plain string) (string, error) {
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	out := b.aead.Seal(nonce, nonce, []byte(plain), nil)
	return prefix + base64.RawURLEncoding.EncodeToString(out), nil
}

func (b *Box) Open(sealed string) (string, error) {
	if !strings.HasPrefix(sealed, prefix) {
		return "", ErrMalformed
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(sealed, prefix))
	if err != nil {
		return "", ErrMalformed
	}
	ns := b.aead.NonceSize()
	if len(raw) < ns+b.aead.Overhead() {
		return "", ErrMalformed
	}
	plain, err := b.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("open sealed token: %w", err)
	}
	return string(plain), nil
}

// TokenStore matches the console's token persistence port.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Store seals tokens before handing them to the wrapped store.
type Store struct {
	inner TokenStore
	box   *Box
}

func Wrap(inner TokenStore, box *Box) *Store {
	return &Store{inner: inner, box: box}
}

func (s *Store) Load(ctx context.Context) (string, error) {
	sealed, err := s.inner.Load(ctx)
	if err != nil || sealed == "" {
		return "", err
	}
	return s.box.Open(sealed)
}

func (s *Store) Save(ctx context.Context, token string) error {
	sealed, err := s.box.Seal(token)
	if err != nil {
		return err
	}
	return s.inner.Save(ctx, sealed)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}
