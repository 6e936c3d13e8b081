// Package artifacts stores encrypted artifacts in the files-to-be-downloaded
// area served by the download endpoint. The default backend is a local
// directory; an S3-compatible bucket can be used instead.
package artifacts

import (
	"context"
	"io"
)

// Store holds encrypted artifacts by name.
type Store interface {
	// Save writes the artifact, creating the backing area if needed and
	// overwriting any artifact with the same name.
	Save(ctx context.Context, name string, content []byte) error

	// Open returns a reader over the named artifact, or
	// common.ErrorNotFound when it does not exist.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
