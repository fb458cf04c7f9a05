// Package secure provides the field-level encryption codec used at the
// storage boundary for sensitive profile attributes.
package secure

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// KeySize is the required codec key length in bytes.
const KeySize = 32

var (
	// ErrInvalidKey is returned when the key material has the wrong length.
	ErrInvalidKey = errors.New("secure: key must be 32 bytes")
	// ErrCiphertext is returned when a stored value cannot be opened.
	ErrCiphertext = errors.New("secure: invalid ciphertext")
)

// Codec encrypts and decrypts profile fields with a NaCl secretbox. It is
// constructed once at process start and injected into the repository that
// needs it; there is no package-level key state.
type Codec struct {
	key [KeySize]byte
}

// NewCodec creates a codec from 32 bytes of key material.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	c := &Codec{}
	copy(c.key[:], key)
	return c, nil
}

// NewCodecFromBase64 creates a codec from a base64-encoded key, the form the
// key takes in configuration.
func NewCodecFromBase64(encoded string) (*Codec, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("secure: decode key: %w", err)
	}
	return NewCodec(raw)
}

// GenerateKey returns a fresh base64-encoded codec key.
func GenerateKey() (string, error) {
	raw := make([]byte, KeySize)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Encrypt seals plaintext into a self-contained ciphertext (nonce prefixed).
// An empty plaintext produces a nil ciphertext so unset fields stay unset.
func (c *Codec) Encrypt(plaintext string) ([]byte, error) {
	if plaintext == "" {
		return nil, nil
	}
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &c.key), nil
}

// Decrypt opens a ciphertext produced by Encrypt. A nil ciphertext yields an
// empty string.
func (c *Codec) Decrypt(ciphertext []byte) (string, error) {
	if len(ciphertext) == 0 {
		return "", nil
	}
	if len(ciphertext) < 24+secretbox.Overhead {
		return "", ErrCiphertext
	}
	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])
	plaintext, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &c.key)
	if !ok {
		return "", ErrCiphertext
	}
	return string(plaintext), nil
}
