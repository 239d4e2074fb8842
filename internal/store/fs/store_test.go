package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorageInitializesEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")

	_, err := NewFileStorage(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestNewFileStorageRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := NewFileStorage(path)
	assert.Error(t, err)
}

func TestPutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	id, err := storage.Put("abc123", "https://example.com/deal")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	originalURL, err := storage.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/deal", originalURL)

	originalURL, err = storage.Get("doesNotExist")
	require.NoError(t, err)
	assert.Empty(t, originalURL)
}

func TestGetByOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	_, err = storage.Put("abc123", "https://example.com/deal")
	require.NoError(t, err)

	id, err := storage.GetByOriginal("https://example.com/deal")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	id, err = storage.GetByOriginal("https://example.com/other")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestPutIsIdempotentPerOriginalURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	first, err := storage.Put("abc123", "https://example.com/deal")
	require.NoError(t, err)

	second, err := storage.Put("zzz999", "https://example.com/deal")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	records, err := storage.readAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")

	storage, err := NewFileStorage(path)
	require.NoError(t, err)
	_, err = storage.Put("abc123", "https://example.com/deal")
	require.NoError(t, err)

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	originalURL, err := reopened.Get("abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/deal", originalURL)
}

func TestDeleteStorageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteStorageFile())
	assert.NoFileExists(t, path)
	assert.Error(t, storage.Ping())
}
