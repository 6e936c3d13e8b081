package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b", "c")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDir_ExistingDirectoryIsFine(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, EnsureDir(tmp))
	require.NoError(t, EnsureDir(tmp))
}

func TestEnsureParentDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "keys", "filekey.key")

	require.NoError(t, EnsureParentDir(path))

	info, err := os.Stat(filepath.Join(tmp, "keys"))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, os.WriteFile(path, []byte("k"), 0o600))
}
