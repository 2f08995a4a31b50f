package feed

//
// client.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"
	"gitlab.com/kabes/go-podcatcher/internal/aerr"
	"gitlab.com/kabes/go-podcatcher/internal/common"
	"gitlab.com/kabes/go-podcatcher/internal/config"
)

const userAgent = "go-podcatcher/1.0"

// Client download feed documents over http with bounded retries.
// One attempt is counted for every transport failure and every
// response with status >= 400.
type Client struct {
	httpc      *http.Client
	maxRetries uint64
	retryDelay time.Duration
}

func NewClient(conf *config.SyncConfig) *Client {
	dialer := net.Dialer{Timeout: conf.ConnectTimeout}
	httpc := &http.Client{
		Timeout: conf.ReadTimeout,
		Transport: &http.Transport{
			DialContext:       dialer.DialContext,
			ForceAttemptHTTP2: true,
		},
	}

	return &Client{
		httpc:      httpc,
		maxRetries: uint64(conf.MaxRetries), //nolint:gosec
		retryDelay: conf.RetryDelay,
	}
}

// Fetch get feed document from `url`. When all attempts fail return
// common.ErrNoResponse wrapping the last error.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	logger := log.Ctx(ctx)

	var body []byte

	// maxRetries is the total number of attempts
	backoff := retry.WithMaxRetries(c.maxRetries-1, retry.NewConstant(c.retryDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		data, err := c.fetchOnce(ctx, url)
		if err != nil {
			logger.Debug().Err(err).Str(common.LogKeyPodcastURL, url).Msg("feed fetch attempt failed")

			return retry.RetryableError(err)
		}

		body = data

		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, aerr.ApplyFor(common.ErrNoResponse, err).WithMeta("url", url)
	}

	return body, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, aerr.Wrapf(err, "prepare request failed").WithTag(aerr.TransportError)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, aerr.Wrapf(err, "request failed").WithTag(aerr.TransportError)
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, aerr.Newf("server returned status %d", resp.StatusCode).
			WithTag(aerr.TransportError)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, aerr.Wrapf(err, "read response failed").WithTag(aerr.TransportError)
	}

	return body, nil
}
