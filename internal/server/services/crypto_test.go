package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuznecov/lockbox/internal/common"
	"github.com/akuznecov/lockbox/internal/server/artifacts"
)

func newCryptoService(t *testing.T) (*CryptoService, *artifacts.LocalStore) {
	t.Helper()
	key := &fernet.Key{}
	require.NoError(t, key.Generate())
	store := artifacts.NewLocalStore(filepath.Join(t.TempDir(), "uploads"))
	return NewCryptoService(key, store), store
}

func writeSourceFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestCryptoService_EncryptDecryptRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, store := newCryptoService(t)

	content := common.GenerateRandByteArray(2048)
	source := writeSourceFile(t, "report.pdf", content)

	name, err := svc.EncryptFile(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf"+EncryptedSuffix, name)

	// the source file is left untouched
	got, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// decrypting the stored artifact recovers the original bytes and
	// strips the suffix
	artifactPath := store.Path(name)
	outputPath, err := svc.DecryptFile(ctx, artifactPath)
	require.NoError(t, err)
	assert.Equal(t, store.Path("report.pdf"), outputPath)

	recovered, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, content, recovered)

	// the artifact is deleted only after the output was written
	_, err = os.Stat(artifactPath)
	assert.True(t, os.IsNotExist(err))
}

func TestCryptoService_DecryptWithoutSuffixKeepsInput(t *testing.T) {
	ctx := context.Background()
	svc, store := newCryptoService(t)

	source := writeSourceFile(t, "notes.txt", []byte("plain"))
	name, err := svc.EncryptFile(ctx, source)
	require.NoError(t, err)

	// stash the artifact under a name without the ".encrypted" suffix
	token, err := os.ReadFile(store.Path(name))
	require.NoError(t, err)
	blob := writeSourceFile(t, "blob", token)

	outputPath, err := svc.DecryptFile(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, blob+DecryptedSuffix, outputPath)

	recovered, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), recovered)

	// input without the suffix is not deleted
	_, err = os.Stat(blob)
	assert.NoError(t, err)
}

func TestCryptoService_PathValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCryptoService(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"empty path", "", common.ErrNoFilePath},
		{"missing file", filepath.Join(dir, "nope.txt"), common.ErrFileNotFound},
		{"directory", dir, common.ErrNotAFile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.EncryptFile(ctx, tc.path)
			assert.ErrorIs(t, err, tc.wantErr)

			_, err = svc.DecryptFile(ctx, tc.path)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCryptoService_DecryptGarbageFails(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCryptoService(t)

	path := writeSourceFile(t, "junk.encrypted", []byte("not a token at all"))

	_, err := svc.DecryptFile(ctx, path)
	assert.ErrorIs(t, err, common.ErrInvalidCiphertext)

	// no output was written and the input stays in place
	_, err = os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(path), "junk"))
	assert.True(t, os.IsNotExist(err))
}

func TestCryptoService_DecryptWrongKeyFails(t *testing.T) {
	ctx := context.Background()
	svc1, store1 := newCryptoService(t)
	svc2, _ := newCryptoService(t)

	source := writeSourceFile(t, "secret.txt", []byte("sensitive"))
	name, err := svc1.EncryptFile(ctx, source)
	require.NoError(t, err)

	_, err = svc2.DecryptFile(ctx, store1.Path(name))
	assert.ErrorIs(t, err, common.ErrInvalidCiphertext)

	// the artifact survives the failed decrypt
	_, err = os.Stat(store1.Path(name))
	assert.NoError(t, err)
}
