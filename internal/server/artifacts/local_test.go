package artifacts

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuznecov/lockbox/internal/common"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	// the base dir must be created on demand
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewLocalStore(dir)

	require.NoError(t, store.Save(ctx, "report.txt.encrypted", []byte("token-bytes")))

	rc, err := store.Open(ctx, "report.txt.encrypted")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("token-bytes"), got)
}

func TestLocalStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Save(ctx, "a.encrypted", []byte("one")))
	require.NoError(t, store.Save(ctx, "a.encrypted", []byte("two")))

	rc, err := store.Open(ctx, "a.encrypted")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "nope.encrypted")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLocalStore_Path(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Save(context.Background(), "a.encrypted", []byte("x")))

	info, err := os.Stat(store.Path("a.encrypted"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
