// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usersource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/usertable/lib/config"
	"github.com/bureau-foundation/usertable/lib/user"
)

// Source fetches the complete user list.
type Source interface {
	// Fetch returns every record the source holds, in source order.
	Fetch(ctx context.Context) ([]user.Record, error)

	// Describe names the source for log lines and the title bar.
	Describe() string
}

// New returns the source selected by cfg: a FileSource when File is
// set, otherwise an HTTPSource for URL.
func New(cfg config.SourceConfig, logger *slog.Logger) (Source, error) {
	if cfg.File != "" {
		return NewFileSource(cfg.File), nil
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("usersource: no url or file configured")
	}
	return NewHTTPSource(HTTPConfig{URL: cfg.URL, Logger: logger}), nil
}

// decodeRecords parses a JSON array of user objects. A JSON null
// decodes as an empty list.
func decodeRecords(data []byte) ([]user.Record, error) {
	var records []user.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []user.Record{}
	}
	return records, nil
}
