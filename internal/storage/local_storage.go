package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// extByMIME covers the image types the booking forms produce.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// LocalAssetStore implements AssetStore on the local filesystem. Assets
// are served back through the HTTP asset handler under baseURL.
type LocalAssetStore struct {
	baseURL   string
	uploadDir string
}

// NewLocalAssetStore creates the upload directory if needed.
func NewLocalAssetStore(baseURL, uploadDir string) (*LocalAssetStore, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalAssetStore{baseURL: baseURL, uploadDir: uploadDir}, nil
}

func (s *LocalAssetStore) SaveDataURI(ctx context.Context, folder, dataURI string) (string, error) {
	mime, payload, err := splitDataURI(dataURI)
	if err != nil {
		return "", err
	}
	ext, ok := extByMIME[mime]
	if !ok {
		return "", fmt.Errorf("%w: unsupported media type %q", ErrInvalidDataURI, mime)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return s.Save(ctx, folder, ext, strings.NewReader(string(data)))
}

func (s *LocalAssetStore) Save(ctx context.Context, folder, ext string, reader io.Reader) (string, error) {
	key := filepath.Join(folder, uuid.New().String()+ext)
	fullPath := filepath.Join(s.uploadDir, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/api/v1/assets/%s", s.baseURL, filepath.ToSlash(key)), nil
}

func (s *LocalAssetStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") {
		return nil, fmt.Errorf("invalid asset key %q", key)
	}
	return os.Open(filepath.Join(s.uploadDir, cleaned))
}

func (s *LocalAssetStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.uploadDir, filepath.Clean(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalAssetStore) Exists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(filepath.Join(s.uploadDir, filepath.Clean(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// splitDataURI pulls the MIME type and base64 payload out of a
// "data:<mime>;base64,<payload>" string.
func splitDataURI(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", "", ErrInvalidDataURI
	}
	rest := uri[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", "", ErrInvalidDataURI
	}
	return rest[:sep], rest[sep+len(";base64,"):], nil
}
