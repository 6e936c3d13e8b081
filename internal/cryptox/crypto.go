// Package cryptox wraps the Fernet authenticated-encryption primitive and
// the on-disk key bootstrap used by the crypto gateway.
//
// A Fernet token carries a version byte, an issue timestamp, a random IV and
// an HMAC tag next to the ciphertext, base64url-encoded as ASCII. Decrypting
// with the wrong key or a tampered token fails cleanly instead of producing
// garbage.
package cryptox

import (
	"fmt"
	"os"
	"strings"

	"github.com/fernet/fernet-go"

	"github.com/akuznecov/lockbox/internal/common"
	"github.com/akuznecov/lockbox/internal/filex"
)

// LoadOrCreateKey returns the Fernet key stored at path. On first run it
// generates a fresh key and persists it, creating the parent directory if
// needed. The file holds the base64 encoding of the 32-byte key.
//
// The same key must be used for every encrypt and decrypt call; replacing
// the file orphans previously encrypted artifacts.
func LoadOrCreateKey(path string) (*fernet.Key, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, derr := fernet.DecodeKey(strings.TrimSpace(string(data)))
		if derr != nil {
			return nil, fmt.Errorf("decode key file %s: %w", path, derr)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read key file %s: %w", path, err)
	}

	key := &fernet.Key{}
	if err := key.Generate(); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(key.Encode()), 0o600); err != nil {
		return nil, fmt.Errorf("write key file %s: %w", path, err)
	}
	return key, nil
}

// Encrypt seals plaintext into a Fernet token.
func Encrypt(plaintext []byte, key *fernet.Key) ([]byte, error) {
	token, err := fernet.EncryptAndSign(plaintext, key)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return token, nil
}

// Decrypt opens a Fernet token sealed under key, recovering the original
// bytes exactly. It returns common.ErrInvalidCiphertext when the token fails
// authentication: sealed under a different key, corrupted, or not a token
// at all.
func Decrypt(token []byte, key *fernet.Key) ([]byte, error) {
	msg := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{key})
	if msg == nil {
		return nil, common.ErrInvalidCiphertext
	}
	return msg, nil
}
