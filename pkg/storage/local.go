package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes objects under a directory served by the app itself at
// the public base URL. Meant for development.
type LocalStorage struct {
	dir           string
	publicBaseURL string
}

func NewLocalStorage(dir, publicBaseURL string) (*LocalStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("local storage dir is required")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStorage{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Upload(_ context.Context, input *UploadInput) error {
	path, err := s.path(input.Key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir for %s: %w", input.Key, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", input.Key, err)
	}

	_, err = io.Copy(f, input.Data)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("write %s: %w", input.Key, err)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", input.Key, closeErr)
	}
	return nil
}

func (s *LocalStorage) PublicURL(_ context.Context, key string) (string, error) {
	if _, err := s.path(key); err != nil {
		return "", err
	}
	return s.publicBaseURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}

// path keeps every key inside dir.
func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(key))
	if key == "" || clean == string(filepath.Separator) {
		return "", fmt.Errorf("object key is required")
	}
	return filepath.Join(s.dir, clean), nil
}

var _ Storage = (*LocalStorage)(nil)
