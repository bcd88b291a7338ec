package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndPublicURL(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	err = s.Upload(ctx, &UploadInput{
		Key:         "uploads/abc123.jpg",
		ContentType: "image/jpeg",
		Data:        strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)

	body, err := os.ReadFile(filepath.Join(dir, "uploads", "abc123.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(body))

	url, err := s.PublicURL(ctx, "uploads/abc123.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/uploads/abc123.jpg", url)
}

func TestLocalStorage_KeyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(filepath.Join(dir, "root"), "http://x")
	require.NoError(t, err)

	err = s.Upload(context.Background(), &UploadInput{
		Key:  "../../escape.txt",
		Data: strings.NewReader("x"),
	})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "root", "escape.txt"))
	assert.NoError(t, err)
}

func TestLocalStorage_RefusesOverwrite(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://x")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, &UploadInput{Key: "a.png", Data: strings.NewReader("1")}))
	assert.Error(t, s.Upload(ctx, &UploadInput{Key: "a.png", Data: strings.NewReader("2")}))
}

func TestS3Storage_PublicURL(t *testing.T) {
	ctx := context.Background()

	aws := &S3Storage{bucket: "product-images", region: "ap-south-1"}
	url, err := aws.PublicURL(ctx, "uploads/k1.png")
	require.NoError(t, err)
	assert.Equal(t, "https://product-images.s3.ap-south-1.amazonaws.com/uploads/k1.png", url)

	minio := &S3Storage{bucket: "product-images", endpoint: "http://minio:9000"}
	url, err = minio.PublicURL(ctx, "uploads/k1.png")
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/product-images/uploads/k1.png", url)

	cdn := &S3Storage{bucket: "product-images", publicBaseURL: "https://cdn.example.com"}
	url, err = cdn.PublicURL(ctx, "uploads/k1.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/k1.png", url)

	_, err = cdn.PublicURL(ctx, "")
	assert.Error(t, err)
}
