package memory

import (
	"sync"
)

type MemoryStorage struct {
	mux       sync.Mutex
	urls      map[string]string
	originals map[string]string
}

func NewMemoryStorage(records map[string]string) *MemoryStorage {
	originals := make(map[string]string, len(records))
	for short, original := range records {
		originals[original] = short
	}

	return &MemoryStorage{
		urls:      records,
		originals: originals,
	}
}

func (s *MemoryStorage) Get(shortURL string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.urls[shortURL], nil
}

func (s *MemoryStorage) GetByOriginal(originalURL string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.originals[originalURL], nil
}

func (s *MemoryStorage) Put(id string, url string) (string, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if existing, ok := s.originals[url]; ok {
		return existing, nil
	}

	s.urls[id] = url
	s.originals[url] = id
	return id, nil
}

func (s *MemoryStorage) Ping() error {
	return nil
}

func (s *MemoryStorage) Close() {}
