package artifacts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akuznecov/lockbox/internal/common"
	"github.com/akuznecov/lockbox/internal/filex"
)

// LocalStore keeps artifacts as files under a single directory.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

func (s *LocalStore) Save(ctx context.Context, name string, content []byte) error {
	if err := filex.EnsureDir(s.baseDir); err != nil {
		return err
	}
	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("open artifact %s: %w", name, err)
	}
	return f, nil
}

// Path returns the local filesystem path of the named artifact. The crypto
// gateway uses it to let clients decrypt an artifact by server-local path.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}
