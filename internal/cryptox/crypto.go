// Package cryptox implements note-content encryption for the notes client.
//
// Contents are sealed with AES-256-GCM under a key derived from the user's
// passphrase via argon2id. The armored form is
//
//	encv1:base64(salt | nonce | ciphertext)
//
// so a payload is self-contained: the random salt and nonce travel with it.
// The backend only ever sees the armored string.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/gugan-zemuria/notes-app/internal/common"
)

const (
	armorPrefix = "encv1:"
	saltSize    = 16
	nonceSize   = 12
	keySize     = 32
)

var (
	// ErrInvalidKey is returned when a payload fails authentication,
	// i.e. the supplied key is wrong or the payload was tampered with.
	// Callers never see partial or garbage plaintext.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrMalformedPayload is returned when the armored string cannot be
	// parsed at all (bad prefix, bad base64, truncated).
	ErrMalformedPayload = errors.New("malformed encrypted payload")

	// ErrEmptyKey is returned when an empty passphrase is supplied.
	ErrEmptyKey = errors.New("empty encryption key")
)

func deriveKey(key string, salt []byte) []byte {
	return argon2.IDKey([]byte(key), salt, 1, 64*1024, 4, keySize)
}

// IsEncrypted reports whether s looks like an armored encrypted payload.
func IsEncrypted(s string) bool {
	return strings.HasPrefix(s, armorPrefix)
}

// Encrypt seals plaintext under the given passphrase and returns the
// armored payload.
func Encrypt(plaintext, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	salt := common.GenerateRandByteArray(saltSize)
	nonce := common.GenerateRandByteArray(nonceSize)

	block, err := aes.NewCipher(deriveKey(key, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	ciphertext := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	payload := make([]byte, 0, saltSize+nonceSize+len(ciphertext))
	payload = append(payload, salt...)
	payload = append(payload, nonce...)
	payload = append(payload, ciphertext...)

	return armorPrefix + base64.StdEncoding.EncodeToString(payload), nil
}

// Decrypt opens an armored payload with the given passphrase. A wrong key
// yields ErrInvalidKey; a payload that does not parse yields
// ErrMalformedPayload.
func Decrypt(armored, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	if !IsEncrypted(armored) {
		return "", ErrMalformedPayload
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(armored, armorPrefix))
	if err != nil {
		return "", ErrMalformedPayload
	}
	if len(payload) < saltSize+nonceSize {
		return "", ErrMalformedPayload
	}

	salt := payload[:saltSize]
	nonce := payload[saltSize : saltSize+nonceSize]
	ciphertext := payload[saltSize+nonceSize:]

	block, err := aes.NewCipher(deriveKey(key, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidKey
	}
	return string(plaintext), nil
}
