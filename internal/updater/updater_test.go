package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickprogramme/recetario/internal/fetch"
)

const releaseJSON = `{
  "tag_name": "2025.10.22",
  "name": "yt-dlp 2025.10.22",
  "published_at": "2025-10-22T20:01:02Z",
  "html_url": "https://github.com/yt-dlp/yt-dlp/releases/tag/2025.10.22",
  "assets": [
    {"name": "yt-dlp", "browser_download_url": "https://example.test/yt-dlp", "content_type": "application/octet-stream"},
    {"name": "yt-dlp.exe", "browser_download_url": "https://example.test/yt-dlp.exe", "content_type": "application/vnd.microsoft.portable-executable"},
    {"name": "SHA2-256SUMS", "browser_download_url": "https://example.test/sums", "content_type": "text/plain"}
  ]
}`

func newTestChecker(t *testing.T, status int, body string) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Checker{Fetcher: fetch.NewFetcher(2 * time.Second), URL: srv.URL}
}

func TestCheck(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, releaseJSON)

	res, err := c.Check(context.Background(), "2025.10.22\n")
	require.NoError(t, err)
	assert.True(t, res.IsUpToDate)
	assert.Equal(t, "https://example.test/yt-dlp.exe", res.GetUpdateLink("windows"))
	assert.Equal(t, "https://example.test/yt-dlp", res.GetUpdateLink("linux"))
	// pas d'asset macOS : lien vers la page de la release
	assert.Equal(t, "https://github.com/yt-dlp/yt-dlp/releases/tag/2025.10.22", res.GetUpdateLink("darwin"))

	old, err := c.Check(context.Background(), "2024.01.01")
	require.NoError(t, err)
	assert.False(t, old.IsUpToDate)
}

func TestLatestReleaseErrors(t *testing.T) {
	_, err := newTestChecker(t, http.StatusForbidden, `{"message":"rate limited"}`).LatestRelease(context.Background())
	require.ErrorIs(t, err, fetch.ErrStatus)

	_, err = newTestChecker(t, http.StatusOK, `{"tag_name":"x","assets":[]}`).LatestRelease(context.Background())
	require.ErrorIs(t, err, ErrNoAsset)
}
