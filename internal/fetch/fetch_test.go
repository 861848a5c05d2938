package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcherBytesOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte("jpegdata"))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), Timeout: time.Second}
	data, err := f.Bytes(context.Background(), srv.URL+"/hq.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))
}

func TestFetcherBytesNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client()}
	_, err := f.FetchThumbnail(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrStatus)
}

func TestFetcherBytesTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), Timeout: 50 * time.Millisecond}
	_, err := f.Bytes(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcherBytesTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	f := &Fetcher{Client: srv.Client(), MaxBytes: 16}
	_, err := f.Bytes(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestFetcherInvalidURL(t *testing.T) {
	_, err := NewFetcher(0).Bytes(context.Background(), "not a url")
	require.Error(t, err)
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"2025.10.22"}`))
	}))
	defer srv.Close()

	type release struct {
		TagName string `json:"tag_name"`
	}
	got, err := FetchJSON[release](context.Background(), &Fetcher{Client: srv.Client()}, srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "2025.10.22", got.TagName)
}
