package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/models"
)

const FileStorageFilePerm = 0600

// FSStorage keeps the whole mapping collection in one JSON file.
// Every operation reads or rewrites the file wholesale; the mutex
// serializes access within the process so a lookup-then-insert
// sequence cannot interleave with another writer.
type FSStorage struct {
	mux  sync.Mutex
	path string
}

// NewFileStorage opens the storage file, creating it with an empty
// collection if it does not exist yet.
func NewFileStorage(filename string) (*FSStorage, error) {
	s := &FSStorage{path: filename}

	if _, err := os.Stat(filename); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error checking storage file: %w", err)
		}
		if err := s.writeAll(make([]models.URLRecord, 0)); err != nil {
			return nil, err
		}
	}

	if _, err := s.readAll(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *FSStorage) readAll() ([]models.URLRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading storage file: %w", err)
	}

	records := make([]models.URLRecord, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding records: %w", err)
	}

	return records, nil
}

func (s *FSStorage) writeAll(records []models.URLRecord) error {
	// Indented output keeps the file diffable.
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}

	if err := os.WriteFile(s.path, data, FileStorageFilePerm); err != nil {
		return fmt.Errorf("error writing storage file: %w", err)
	}

	return nil
}

// Get returns the original URL for a short alias, or "" when unknown.
func (s *FSStorage) Get(shortURL string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	records, err := s.readAll()
	if err != nil {
		return "", err
	}

	for _, r := range records {
		if r.ShortURL == shortURL {
			return r.OriginalURL, nil
		}
	}

	return "", nil
}

// GetByOriginal returns the existing alias for an original URL, or ""
// when the URL has not been shortened before.
func (s *FSStorage) GetByOriginal(originalURL string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	records, err := s.readAll()
	if err != nil {
		return "", err
	}

	for _, r := range records {
		if r.OriginalURL == originalURL {
			return r.ShortURL, nil
		}
	}

	return "", nil
}

// Put appends a new mapping and rewrites the file. If the original URL
// is already present the stored alias is returned instead, keeping
// re-submission idempotent.
func (s *FSStorage) Put(id string, url string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	records, err := s.readAll()
	if err != nil {
		return "", err
	}

	for _, r := range records {
		if r.OriginalURL == url {
			return r.ShortURL, nil
		}
	}

	records = append(records, models.URLRecord{
		UUID:        uuid.NewString(),
		ShortURL:    id,
		OriginalURL: url,
	})

	if err := s.writeAll(records); err != nil {
		return "", err
	}

	return id, nil
}

func (s *FSStorage) Ping() error {
	_, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("error checking storage file: %w", err)
	}
	return nil
}

func (s *FSStorage) Close() {}

func (s *FSStorage) DeleteStorageFile() error {
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("error delete file: %w", err)
	}
	return nil
}
