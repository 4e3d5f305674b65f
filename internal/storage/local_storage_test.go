package storage

import (
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalAssetStore_SaveDataURI(t *testing.T) {
	store, err := NewLocalAssetStore("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)

	ctx := context.Background()
	payload := base64.StdEncoding.EncodeToString([]byte("fake png bytes"))

	t.Run("Stores and serves back", func(t *testing.T) {
		url, err := store.SaveDataURI(ctx, "signatures", "data:image/png;base64,"+payload)
		assert.NoError(t, err)
		assert.Contains(t, url, "/api/v1/assets/signatures/")
		assert.True(t, strings.HasSuffix(url, ".png"))

		key := url[strings.Index(url, "signatures/"):]
		exists, size, err := store.Exists(ctx, key)
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(len("fake png bytes")), size)

		f, err := store.Open(ctx, key)
		assert.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "fake png bytes", string(data))
	})

	t.Run("Rejects non data URIs", func(t *testing.T) {
		_, err := store.SaveDataURI(ctx, "photos", "http://example.com/a.png")
		assert.ErrorIs(t, err, ErrInvalidDataURI)
	})

	t.Run("Rejects unsupported media types", func(t *testing.T) {
		_, err := store.SaveDataURI(ctx, "photos", "data:application/pdf;base64,"+payload)
		assert.ErrorIs(t, err, ErrInvalidDataURI)
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		url, err := store.SaveDataURI(ctx, "photos", "data:image/jpeg;base64,"+payload)
		assert.NoError(t, err)
		key := url[strings.Index(url, "photos/"):]

		assert.NoError(t, store.Delete(ctx, key))
		assert.NoError(t, store.Delete(ctx, key))

		exists, _, err := store.Exists(ctx, key)
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
