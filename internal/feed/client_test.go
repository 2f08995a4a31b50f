package feed

//
// client_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
	"gitlab.com/kabes/go-podcatcher/internal/common"
	"gitlab.com/kabes/go-podcatcher/internal/config"
)

func newTestClient() *Client {
	conf := config.NewSyncConfig()
	conf.RetryDelay = time.Millisecond

	return NewClient(&conf)
}

func TestFetchRetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		_, _ = w.Write([]byte("feed body"))
	}))
	defer server.Close()

	client := newTestClient()

	body, err := client.Fetch(t.Context(), server.URL)
	assert.NoErr(t, err)
	assert.Equal(t, string(body), "feed body")
	assert.Equal(t, calls.Load(), 3)
}

func TestFetchExhaustedRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient()

	_, err := client.Fetch(t.Context(), server.URL)
	assert.ErrSpec(t, err, common.ErrNoResponse)
	assert.Equal(t, calls.Load(), 3)
}

func TestFetchConnectionRefused(t *testing.T) {
	t.Parallel()

	client := newTestClient()

	_, err := client.Fetch(t.Context(), "http://127.0.0.1:1/feed.xml")
	assert.ErrSpec(t, err, common.ErrNoResponse)
}
