package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/models"
)

// Every flow must answer 500 once the backing file is gone: the store
// can no longer be read, which is neither a blacklist rejection nor an
// unknown alias.
func TestStorageFailureAnswers500(t *testing.T) {
	tests := []struct {
		name    string
		request func(t *testing.T) *http.Request
	}{
		{
			name: "resolve",
			request: func(t *testing.T) *http.Request {
				t.Helper()
				return httptest.NewRequest(http.MethodGet, "/r/abc123", nil)
			},
		},
		{
			name: "form shorten",
			request: func(t *testing.T) *http.Request {
				t.Helper()
				form := url.Values{"originalUrl": {"example.com/deal"}}
				req := httptest.NewRequest(http.MethodPost, shortenPath, strings.NewReader(form.Encode()))
				req.Header.Set(contentType, "application/x-www-form-urlencoded")
				return req
			},
		},
		{
			name: "api shorten",
			request: func(t *testing.T) *http.Request {
				t.Helper()
				obj, err := json.Marshal(models.ShortenReq{OriginalURL: "example.com/deal"})
				require.NoError(t, err)
				req := httptest.NewRequest(http.MethodPost, apiShortenPath, bytes.NewBuffer(obj))
				req.Header.Set(contentType, applicationJSON)
				return req
			},
		},
		{
			name: "ping",
			request: func(t *testing.T) *http.Request {
				t.Helper()
				return httptest.NewRequest(http.MethodGet, pingPath, nil)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, storage := newTestRouter(t, "")
			require.NoError(t, storage.DeleteStorageFile())

			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.request(t))

			res := w.Result()
			require.NoError(t, res.Body.Close())
			assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		})
	}
}
