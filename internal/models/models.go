package models

// URLRecord is a single shortening relationship as stored in the backing file.
type URLRecord struct {
	UUID        string `json:"uuid"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

type ShortenReq struct {
	OriginalURL string `json:"originalUrl"`
}

// ShortenRes mirrors the public API contract: error is always present
// (empty string on success), shortUrl is omitted on rejection.
type ShortenRes struct {
	ShortURL string `json:"shortUrl,omitempty"`
	Error    string `json:"error"`
}
