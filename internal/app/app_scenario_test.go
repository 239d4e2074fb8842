package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aarondoran/Dotlink-url-shortener/internal/models"
)

// Walks the whole lifecycle of one mapping: rejection of a blacklisted
// URL, creation, idempotent re-submission and resolution of the alias.
func TestShorteningLifecycle(t *testing.T) {
	r, _ := newTestRouter(t, "spam\n")

	shorten := func(originalURL string) *models.ShortenRes {
		t.Helper()

		obj, err := json.Marshal(models.ShortenReq{OriginalURL: originalURL})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, apiShortenPath, bytes.NewBuffer(obj))
		req.Header.Set(contentType, applicationJSON)

		r.ServeHTTP(w, req)

		res := w.Result()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.NoError(t, res.Body.Close())
		require.Equal(t, http.StatusOK, res.StatusCode)

		var resObj models.ShortenRes
		require.NoError(t, json.Unmarshal(body, &resObj))
		return &resObj
	}

	rejected := shorten("example.com/spam-deal")
	assert.Equal(t, blacklistedMessage, rejected.Error)
	assert.Empty(t, rejected.ShortURL)

	created := shorten("example.com/deal")
	assert.Empty(t, created.Error)
	require.True(t, strings.HasPrefix(created.ShortURL, testBaseURL+"/r/"))

	resubmitted := shorten("https://example.com/deal")
	assert.Equal(t, created.ShortURL, resubmitted.ShortURL)

	id := strings.TrimPrefix(created.ShortURL, testBaseURL+"/r/")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/r/"+id, nil)
	r.ServeHTTP(w, req)

	res := w.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "https://example.com/deal")
}
