package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Put(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir, "/uploads")

	ref, err := store.Put(context.Background(), "bottle.JPG", "image/jpeg", strings.NewReader("img"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(ref, ".JPG"))

	data, err := os.ReadFile(filepath.Join(dir, "products", filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
}

func TestLocal_PutUniqueNames(t *testing.T) {
	store := NewLocal(t.TempDir(), "/uploads")

	a, err := store.Put(context.Background(), "a.png", "", strings.NewReader("1"))
	require.NoError(t, err)

	b, err := store.Put(context.Background(), "a.png", "", strings.NewReader("2"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestLocal_PutCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocal(t.TempDir(), "/uploads").Put(ctx, "a.png", "", strings.NewReader("1"))
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in

	b, _ := io.ReadAll(in.Body)
	f.body = string(b)

	return &s3.PutObjectOutput{}, f.err
}

func TestS3_Put(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "Success"},
		{name: "UploadFails", err: errors.New("access denied"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeS3{err: tt.err}
			store := newS3(fake, "bucket", "https://cdn.example.com/uploads")

			ref, err := store.Put(context.Background(), "bag.webp", "image/webp", strings.NewReader("bytes"))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "bucket", aws.ToString(fake.input.Bucket))
			assert.Equal(t, "image/webp", aws.ToString(fake.input.ContentType))
			assert.Equal(t, int64(5), aws.ToInt64(fake.input.ContentLength))
			assert.Equal(t, "bytes", fake.body)

			key := aws.ToString(fake.input.Key)
			assert.True(t, strings.HasPrefix(key, "products/"))
			assert.Equal(t, "https://cdn.example.com/uploads/"+key, ref)
		})
	}
}
