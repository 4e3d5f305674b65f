package storage

import (
	"context"
	"io"
)

// AssetStore is the boundary to the object store holding vehicle images,
// client documents, and captured signatures. Assets arrive from the
// booking forms as data URIs; the store decodes and persists them and
// hands back a public URL.
type AssetStore interface {
	// SaveDataURI decodes a base64 data URI, stores the bytes under a
	// fresh key in the given folder, and returns the public URL.
	SaveDataURI(ctx context.Context, folder, dataURI string) (string, error)

	// Save stores raw bytes under a fresh key and returns the public URL.
	Save(ctx context.Context, folder, ext string, reader io.Reader) (string, error)

	// Open reads a stored asset by key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored asset. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the key is stored and its size.
	Exists(ctx context.Context, key string) (bool, int64, error)
}
