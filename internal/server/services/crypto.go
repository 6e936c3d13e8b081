// This file implements CryptoService, the gateway for encrypting and
// decrypting files named by server-local paths.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fernet/fernet-go"

	"github.com/akuznecov/lockbox/internal/common"
	"github.com/akuznecov/lockbox/internal/cryptox"
	"github.com/akuznecov/lockbox/internal/server/artifacts"
)

// Suffixes marking transformed files.
const (
	EncryptedSuffix = ".encrypted"
	DecryptedSuffix = ".decrypted"
)

// CryptoService owns the process encryption key and the artifact store.
type CryptoService struct {
	key   *fernet.Key
	store artifacts.Store
}

// NewCryptoService constructs a CryptoService around the process key loaded
// at startup.
func NewCryptoService(key *fernet.Key, store artifacts.Store) *CryptoService {
	return &CryptoService{key: key, store: store}
}

// EncryptFile seals the file at path with the process key and saves the
// artifact into the store under the file's base name plus the ".encrypted"
// suffix, returning the artifact name. The source file is left untouched
// and the plaintext is never returned to the caller.
func (s *CryptoService) EncryptFile(ctx context.Context, path string) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}

	plaintext, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	token, err := cryptox.Encrypt(plaintext, s.key)
	if err != nil {
		return "", err
	}

	name := filepath.Base(path) + EncryptedSuffix
	if err := s.store.Save(ctx, name, token); err != nil {
		return "", err
	}
	return name, nil
}

// DecryptFile opens the artifact at path with the process key and writes the
// recovered bytes to a sibling path: the ".encrypted" suffix is stripped
// when present, otherwise ".decrypted" is appended. When the input carried
// the ".encrypted" suffix it is deleted, but only after the output write
// completed, so a failure in between never leaves zero copies of the data.
// Artifacts that fail authentication yield common.ErrInvalidCiphertext and
// no output is written.
func (s *CryptoService) DecryptFile(ctx context.Context, path string) (string, error) {
	if err := validatePath(path); err != nil {
		return "", err
	}

	token, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	plaintext, err := cryptox.Decrypt(token, s.key)
	if err != nil {
		return "", err
	}

	wasEncrypted := strings.HasSuffix(path, EncryptedSuffix)
	outputPath := path + DecryptedSuffix
	if wasEncrypted {
		outputPath = strings.TrimSuffix(path, EncryptedSuffix)
	}

	if err := os.WriteFile(outputPath, plaintext, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}

	if wasEncrypted {
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return outputPath, nil
}

// validatePath applies the gateway's precondition checks in order: empty
// path, missing file, directory.
func validatePath(path string) error {
	if path == "" {
		return common.ErrNoFilePath
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return common.ErrFileNotFound
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return common.ErrNotAFile
	}
	return nil
}
