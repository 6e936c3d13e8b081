package artifacts

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuznecov/lockbox/internal/common"
)

type fakeS3Client struct {
	objects map[string][]byte
	putErr  error
}

func newFakeS3Client() *fakeS3Client {
	return &fakeS3Client{objects: make(map[string][]byte)}
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*params.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(data)))}, nil
}

func TestS3Store_SaveAndOpen(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3Client()
	store := &S3Store{client: client, bucket: "artifacts"}

	require.NoError(t, store.Save(ctx, "doc.pdf.encrypted", []byte("token")))

	rc, err := store.Open(ctx, "doc.pdf.encrypted")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("token"), got)
}

func TestS3Store_OpenMissing(t *testing.T) {
	store := &S3Store{client: newFakeS3Client(), bucket: "artifacts"}

	_, err := store.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestNewS3Store_RequiresBucket(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Options{})
	require.Error(t, err)
}
