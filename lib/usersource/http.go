// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usersource

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/bureau-foundation/usertable/lib/netutil"
	"github.com/bureau-foundation/usertable/lib/user"
)

// HTTPConfig holds configuration for an HTTPSource.
type HTTPConfig struct {
	// URL is the endpoint serving the JSON array. Required.
	URL string

	// HTTPClient is used for the request. Defaults to a client whose
	// transport is http.DefaultTransport wrapped by gzhttp, so gzip and
	// zstd responses are decoded transparently.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// HTTPSource fetches the user list with a single GET.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates an HTTPSource from config.
func NewHTTPSource(config HTTPConfig) *HTTPSource {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: gzhttp.Transport(http.DefaultTransport)}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPSource{
		url:        config.URL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Describe returns the endpoint URL.
func (source *HTTPSource) Describe() string {
	return source.url
}

// Fetch issues the GET and decodes the response. The request is bound
// only by ctx.
func (source *HTTPSource) Fetch(ctx context.Context) ([]user.Record, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, source.url, nil)
	if err != nil {
		return nil, &FetchError{Source: source.url, Err: err}
	}
	request.Header.Set("Accept", "application/json")

	started := time.Now()
	response, err := source.httpClient.Do(request)
	if err != nil {
		return nil, &FetchError{Source: source.url, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &FetchError{
			Source:     source.url,
			StatusCode: response.StatusCode,
			Body:       netutil.ErrorBody(response.Body),
			Err:        fmt.Errorf("unexpected status %s", response.Status),
		}
	}

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, &FetchError{Source: source.url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, &FetchError{Source: source.url, Err: fmt.Errorf("decoding users: %w", err)}
	}

	source.logger.Debug("fetched users",
		"url", source.url,
		"count", len(records),
		"bytes", len(body),
		"duration", time.Since(started),
	)
	return records, nil
}
